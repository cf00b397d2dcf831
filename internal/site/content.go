package site

var profile = Profile{
	Name:     "Your Name",
	Headline: "Full Stack Developer",
	Summary: "I build modern, responsive web applications with PHP, MySQL, and modern " +
		"frontend technologies. Passionate about creating efficient, user-friendly solutions.",
}

var skills = []SkillCategory{
	{
		Category: "Backend",
		Items: []Skill{
			{Name: "PHP", Level: 95},
			{Name: "Node.js", Level: 80},
			{Name: "Python", Level: 75},
		},
	},
	{
		Category: "Database",
		Items: []Skill{
			{Name: "MySQL", Level: 90},
			{Name: "MongoDB", Level: 75},
			{Name: "PostgreSQL", Level: 70},
		},
	},
	{
		Category: "Frontend",
		Items: []Skill{
			{Name: "HTML/CSS", Level: 95},
			{Name: "JavaScript", Level: 90},
			{Name: "React", Level: 85},
		},
	},
	{
		Category: "Tools & Others",
		Items: []Skill{
			{Name: "Git", Level: 85},
			{Name: "Docker", Level: 70},
			{Name: "AWS", Level: 65},
		},
	},
}

var projects = []Project{
	{
		ID:    1,
		Title: "E-commerce Platform",
		Description: "A full-featured e-commerce platform with product management, cart " +
			"functionality, payment processing, and order tracking.",
		Image:        "https://images.unsplash.com/photo-1488590528505-98d2b5aba04b",
		Technologies: []string{"PHP", "MySQL", "JavaScript", "Bootstrap", "Stripe API"},
		LiveDemo:     "https://example.com/demo",
		GithubLink:   "https://github.com/yourusername/ecommerce",
	},
	{
		ID:    2,
		Title: "Task Management System",
		Description: "A comprehensive task management application with user authentication, " +
			"task assignments, progress tracking, and notifications.",
		Image:        "https://images.unsplash.com/photo-1486312338219-ce68d2c6f44d",
		Technologies: []string{"PHP", "MySQL", "React", "Tailwind CSS", "RESTful API"},
		LiveDemo:     "https://example.com/demo2",
		GithubLink:   "https://github.com/yourusername/taskmanager",
	},
	{
		ID:    3,
		Title: "Community Blog Platform",
		Description: "A multi-user blog platform with content management, commenting system, " +
			"user profiles, and social sharing features.",
		Image:        "https://images.unsplash.com/photo-1581091226825-a6a2a5aee158",
		Technologies: []string{"PHP", "MySQL", "jQuery", "AJAX", "Redis"},
		LiveDemo:     "https://example.com/demo3",
		GithubLink:   "https://github.com/yourusername/blogplatform",
	},
	{
		ID:    4,
		Title: "Inventory Management System",
		Description: "An inventory tracking application for small businesses with reporting, " +
			"barcode scanning, and supplier management.",
		Image:        "https://images.unsplash.com/photo-1461749280684-dccba630e2f6",
		Technologies: []string{"PHP", "MySQL", "Chart.js", "Bootstrap", "PDF Generation"},
		LiveDemo:     "https://example.com/demo4",
		GithubLink:   "https://github.com/yourusername/inventory",
	},
}
