package content

var (
	aboutMe = []string{
		`I'm **Yahya Afadisse**, a passionate full-stack web developer skilled in Laravel, JavaScript, and modern
		frontend tools like React. I'm currently studying at YouCode, and I've developed several real-world
		projects from scratch.`,

		`I love building clean, functional, and engaging web experiences. My approach combines technical
		expertise with creative problem-solving to deliver solutions that exceed expectations.`,

		`Currently pursuing a degree in Full-Stack development at YouCode | UM6P, I'm constantly expanding my
		skills and staying up-to-date with the latest web technologies.`,
	}

	projectsIntro = `Here are some of the projects I've worked on. Each demonstrates different skills and technologies.`

	contactIntro = `Feel free to reach out for collaborations or just a friendly chat.`
)

var projects = []ProjectEntry{
	{
		Slug:        "youdemy",
		Title:       "Youdemy",
		Thumbnail:   "/images/youdemy.png",
		Description: "A Laravel-based platform for online courses. It includes course creation, admin controls, and a user-friendly dashboard for students.",
		Highlights:  []string{"Laravel", "MySQL"},
		Tags:        []string{"Laravel", "MySQL", "Bootstrap"},
		RepoURL:     "https://github.com/YahyaAf/Youdemy",
	},
	{
		Slug:        "createcv",
		Title:       "CreateCv",
		Thumbnail:   "/images/createcv.png",
		Description: "A web app that helps users create professional CVs. Fully dynamic with downloadable results.",
		Highlights:  []string{"JavaScript", "Tailwind"},
		Tags:        []string{"JavaScript", "HTML/CSS", "Tailwind"},
		RepoURL:     "https://github.com/YahyaAf/CreateCv",
	},
	{
		Slug:        "takeurterrain",
		Title:       "TakeUrTerrain",
		Thumbnail:   "/images/takeurterrain.png",
		Description: "Field reservation system for sports like football, basketball, and tennis. Lets users book time slots and view availability.",
		Highlights:  []string{"Laravel", "JavaScript"},
		Tags:        []string{"Laravel", "MySQL", "JavaScript"},
		RepoURL:     "https://github.com/YahyaAf/TakeUrTerrain",
	},
	{
		Slug:        "hrms",
		Title:       "HRMS",
		Thumbnail:   "/images/hrms.png",
		Description: "A Human Resource Management System. Manage employees, salaries, and departments efficiently.",
		Highlights:  []string{"Laravel", "React"},
		Tags:        []string{"Laravel", "MySQL", "React"},
		RepoURL:     "https://github.com/YahyaAf/hrms",
	},
	{
		Slug:        "udeconnect",
		Title:       "udeconnect",
		Thumbnail:   "/images/udeconnect.png",
		Description: "An e-learning platform built with Laravel + React. Features course creation, user login, and clean UX.",
		Highlights:  []string{"Laravel", "React"},
		Tags:        []string{"Laravel", "React", "MySQL"},
		RepoURL:     "https://github.com/YahyaAf/udeconnect",
	},
	{
		Slug:        "todolist",
		Title:       "ToDoList",
		Thumbnail:   "/images/todolist.png",
		Description: "A to-do app made with Bootstrap and JavaScript for managing daily tasks.",
		Highlights:  []string{"JavaScript", "Bootstrap"},
		Tags:        []string{"JavaScript", "Bootstrap", "HTML/CSS"},
		RepoURL:     "https://github.com/YahyaAf/ToDoList",
	},
	{
		Slug:        "futchampions",
		Title:       "FutChampions",
		Thumbnail:   "/images/futchampions.png",
		Description: "A football tournament tracker. Users can view rankings and manage matches between friends.",
		Highlights:  []string{"HTML5", "JavaScript"},
		Tags:        []string{"HTML5", "Tailwind CSS", "JavaScript"},
		RepoURL:     "https://github.com/YahyaAf/FutChampions",
	},
	{
		Slug:        "fakhar",
		Title:       "FAKHAR.ma",
		Thumbnail:   "/images/fakhar.png",
		Description: "A modern e-commerce site with product management, cart, admin panel, and smooth user flow.",
		Highlights:  []string{"Laravel", "React"},
		Tags:        []string{"Laravel", "MySQL", "React.js", "Tailwind CSS", "REST API"},
		RepoURL:     "https://github.com/YahyaAf/FAKHAR.ma",
	},
}
