package main

// Section headings and intros rendered around the portfolio content.
var (
	HeroGreeting = `Hi, I'm`

	AboutHeading = `About Me`

	SkillsHeading = `Skills & Expertise`
	SkillsIntro   = `Languages, frameworks and tools I reach for when building
	everything from web platforms to embedded firmware.`

	ExperienceHeading = `Experience`

	ProjectsHeading = `Projects`
	ProjectsIntro   = `A selection of things I have built, from eCommerce storefronts
	to database systems and microcontroller projects.`

	EducationHeading = `Education`

	AchievementsHeading = `Achievements & Certifications`

	ContactHeading = `Get In Touch`
	ContactIntro   = `Have a question, an opportunity, or just want to say hello?
	Send me a message and I'll get back to you as soon as I can.`

	PrivacyNote = `This site records page views with a salted, truncated hash of your IP
	address instead of the address itself. Requests sent with Do Not Track are never recorded.
	Records are deleted automatically once they pass the retention period.`
)
