package career

import (
	"github.com/okian/studytrack/internal/domain/metric"
	"github.com/okian/studytrack/internal/domain/model"
)

var careerData = []model.Career{
	{
		Name:        "Cybersecurity Specialist",
		Description: "Protect systems, networks, and data from cyber threats and incidents.",
		Skills:      []string{"Network Security", "Threat Analysis", "Cryptography", "Incident Response", "Ethical Hacking"},
	},
	{
		Name:        "Data Analyst",
		Description: "Transform data into insights for better product and business decisions.",
		Skills:      []string{"Statistics", "SQL", "Data Visualization", "Python Programming", "Business Analysis"},
	},
	{
		Name:        "Doctor",
		Description: "Diagnose and treat patients using medical science and clinical judgment.",
		Skills:      []string{"Biology", "Anatomy", "Patient Care", "Medical Diagnostics", "Pharmacology"},
	},
	{
		Name:        "Engineer",
		Description: "Design and build practical systems, structures, and processes.",
		Skills:      []string{"Mathematics", "Physics", "CAD Design", "Project Management", "Materials Science"},
	},
	{
		Name:        "Software Developer",
		Description: "Build and maintain software systems for web, mobile, and cloud platforms.",
		Skills:      []string{"Programming", "Data Structures", "Algorithms", "System Design", "Databases"},
	},
}

func rule(m metric.Metric, higherIsBetter bool, weight float64) model.MetricRule {
	return model.MetricRule{Metric: m, HigherIsBetter: higherIsBetter, Weight: weight}
}

var skillData = []model.SkillArea{
	{
		Name:        "Programming",
		Description: "Write maintainable code, debug issues, and implement features effectively.",
		Importance:  model.LevelCritical,
		Rules: []model.MetricRule{
			rule(metric.StudyHours, true, 0.3),
			rule(metric.FocusScore, true, 0.3),
			rule(metric.AssignmentsCompletedPerWeek, true, 0.25),
			rule(metric.PhoneUsageHours, false, 0.15),
		},
	},
	{
		Name:        "Data Structures",
		Description: "Use the right in-memory data structures to improve runtime and reliability.",
		Importance:  model.LevelCritical,
		Rules: []model.MetricRule{
			rule(metric.FocusScore, true, 0.35),
			rule(metric.StudyHours, true, 0.35),
			rule(metric.SleepHours, true, 0.15),
			rule(metric.StressLevel, false, 0.15),
		},
	},
	{
		Name:        "Algorithms",
		Description: "Design efficient algorithmic solutions and reason about complexity.",
		Importance:  model.LevelHigh,
		Rules: []model.MetricRule{
			rule(metric.FocusScore, true, 0.35),
			rule(metric.StudyHours, true, 0.3),
			rule(metric.SleepHours, true, 0.2),
			rule(metric.StressLevel, false, 0.15),
		},
	},
	{
		Name:        "System Design",
		Description: "Design scalable software architectures and service boundaries.",
		Importance:  model.LevelHigh,
		Rules: []model.MetricRule{
			rule(metric.StudyHours, true, 0.35),
			rule(metric.FocusScore, true, 0.25),
			rule(metric.BreaksPerDay, true, 0.15),
			rule(metric.SocialMediaHours, false, 0.25),
		},
	},
	{
		Name:        "Databases",
		Description: "Model data and optimize storage, indexing, and query performance.",
		Importance:  model.LevelHigh,
		Rules: []model.MetricRule{
			rule(metric.StudyHours, true, 0.35),
			rule(metric.AssignmentsCompletedPerWeek, true, 0.3),
			rule(metric.FocusScore, true, 0.2),
			rule(metric.PhoneUsageHours, false, 0.15),
		},
	},
	{
		Name:        "Statistics",
		Description: "Apply statistical methods to quantify uncertainty and validate findings.",
		Importance:  model.LevelCritical,
		Rules: []model.MetricRule{
			rule(metric.StudyHours, true, 0.35),
			rule(metric.FocusScore, true, 0.3),
			rule(metric.SleepHours, true, 0.15),
			rule(metric.StressLevel, false, 0.2),
		},
	},
	{
		Name:        "SQL",
		Description: "Query relational data with joins, aggregations, and window functions.",
		Importance:  model.LevelHigh,
		Rules: []model.MetricRule{
			rule(metric.StudyHours, true, 0.35),
			rule(metric.AssignmentsCompletedPerWeek, true, 0.3),
			rule(metric.FocusScore, true, 0.2),
			rule(metric.PhoneUsageHours, false, 0.15),
		},
	},
	{
		Name:        "Data Visualization",
		Description: "Communicate insights with clear charts, dashboards, and storytelling.",
		Importance:  model.LevelHigh,
		Rules: []model.MetricRule{
			rule(metric.FocusScore, true, 0.3),
			rule(metric.StudyHours, true, 0.3),
			rule(metric.SleepHours, true, 0.15),
			rule(metric.SocialMediaHours, false, 0.25),
		},
	},
	{
		Name:        "Python Programming",
		Description: "Use Python tools and libraries for analysis, automation, and modeling.",
		Importance:  model.LevelHigh,
		Rules: []model.MetricRule{
			rule(metric.StudyHours, true, 0.35),
			rule(metric.FocusScore, true, 0.3),
			rule(metric.AssignmentsCompletedPerWeek, true, 0.2),
			rule(metric.GamingHours, false, 0.15),
		},
	},
	{
		Name:        "Business Analysis",
		Description: "Frame business questions and translate analysis into stakeholder action.",
		Importance:  model.LevelModerate,
		Rules: []model.MetricRule{
			rule(metric.FocusScore, true, 0.35),
			rule(metric.StudyHours, true, 0.2),
			rule(metric.AttendancePercentage, true, 0.25),
			rule(metric.StressLevel, false, 0.2),
		},
	},
	{
		Name:        "Network Security",
		Description: "Secure networks through segmentation, monitoring, and hardening.",
		Importance:  model.LevelCritical,
		Rules: []model.MetricRule{
			rule(metric.StudyHours, true, 0.35),
			rule(metric.FocusScore, true, 0.25),
			rule(metric.SleepHours, true, 0.15),
			rule(metric.StressLevel, false, 0.25),
		},
	},
	{
		Name:        "Threat Analysis",
		Description: "Identify attack patterns and assess risk in changing threat landscapes.",
		Importance:  model.LevelHigh,
		Rules: []model.MetricRule{
			rule(metric.FocusScore, true, 0.35),
			rule(metric.StudyHours, true, 0.25),
			rule(metric.SleepHours, true, 0.15),
			rule(metric.PhoneUsageHours, false, 0.25),
		},
	},
	{
		Name:        "Cryptography",
		Description: "Understand encryption, hashing, and PKI for secure data handling.",
		Importance:  model.LevelHigh,
		Rules: []model.MetricRule{
			rule(metric.StudyHours, true, 0.35),
			rule(metric.FocusScore, true, 0.35),
			rule(metric.StressLevel, false, 0.2),
			rule(metric.SleepHours, true, 0.1),
		},
	},
	{
		Name:        "Incident Response",
		Description: "Detect, contain, and recover from security incidents quickly.",
		Importance:  model.LevelCritical,
		Rules: []model.MetricRule{
			rule(metric.FocusScore, true, 0.3),
			rule(metric.SleepHours, true, 0.25),
			rule(metric.StressLevel, false, 0.25),
			rule(metric.StudyHours, true, 0.2),
		},
	},
	{
		Name:        "Ethical Hacking",
		Description: "Assess system vulnerabilities using offensive security techniques.",
		Importance:  model.LevelHigh,
		Rules: []model.MetricRule{
			rule(metric.StudyHours, true, 0.3),
			rule(metric.FocusScore, true, 0.3),
			rule(metric.SocialMediaHours, false, 0.2),
			rule(metric.GamingHours, false, 0.2),
		},
	},
	{
		Name:        "Biology",
		Description: "Understand biological systems relevant to patient health.",
		Importance:  model.LevelCritical,
		Rules: []model.MetricRule{
			rule(metric.StudyHours, true, 0.35),
			rule(metric.AttendancePercentage, true, 0.25),
			rule(metric.SleepHours, true, 0.2),
			rule(metric.StressLevel, false, 0.2),
		},
	},
	{
		Name:        "Anatomy",
		Description: "Learn human body structure for diagnosis and treatment planning.",
		Importance:  model.LevelCritical,
		Rules: []model.MetricRule{
			rule(metric.StudyHours, true, 0.4),
			rule(metric.FocusScore, true, 0.3),
			rule(metric.AttendancePercentage, true, 0.2),
			rule(metric.StressLevel, false, 0.1),
		},
	},
	{
		Name:        "Patient Care",
		Description: "Deliver safe and empathetic care in clinical environments.",
		Importance:  model.LevelHigh,
		Rules: []model.MetricRule{
			rule(metric.AttendancePercentage, true, 0.35),
			rule(metric.SleepHours, true, 0.2),
			rule(metric.StressLevel, false, 0.25),
			rule(metric.FocusScore, true, 0.2),
		},
	},
	{
		Name:        "Medical Diagnostics",
		Description: "Interpret tests and symptoms to build differential diagnoses.",
		Importance:  model.LevelCritical,
		Rules: []model.MetricRule{
			rule(metric.FocusScore, true, 0.35),
			rule(metric.StudyHours, true, 0.25),
			rule(metric.SleepHours, true, 0.2),
			rule(metric.StressLevel, false, 0.2),
		},
	},
	{
		Name:        "Pharmacology",
		Description: "Understand drug interactions, dosing, and treatment protocols.",
		Importance:  model.LevelHigh,
		Rules: []model.MetricRule{
			rule(metric.StudyHours, true, 0.35),
			rule(metric.FocusScore, true, 0.25),
			rule(metric.AttendancePercentage, true, 0.25),
			rule(metric.PhoneUsageHours, false, 0.15),
		},
	},
	{
		Name:        "Mathematics",
		Description: "Apply quantitative reasoning to solve engineering problems.",
		Importance:  model.LevelCritical,
		Rules: []model.MetricRule{
			rule(metric.FocusScore, true, 0.35),
			rule(metric.StudyHours, true, 0.3),
			rule(metric.AssignmentsCompletedPerWeek, true, 0.2),
			rule(metric.SocialMediaHours, false, 0.15),
		},
	},
	{
		Name:        "Physics",
		Description: "Use mechanics, electricity, and materials principles in design.",
		Importance:  model.LevelHigh,
		Rules: []model.MetricRule{
			rule(metric.StudyHours, true, 0.35),
			rule(metric.FocusScore, true, 0.3),
			rule(metric.SleepHours, true, 0.15),
			rule(metric.StressLevel, false, 0.2),
		},
	},
	{
		Name:        "CAD Design",
		Description: "Model and prototype components using computer-aided design tools.",
		Importance:  model.LevelHigh,
		Rules: []model.MetricRule{
			rule(metric.StudyHours, true, 0.35),
			rule(metric.FocusScore, true, 0.25),
			rule(metric.AssignmentsCompletedPerWeek, true, 0.2),
			rule(metric.PhoneUsageHours, false, 0.2),
		},
	},
	{
		Name:        "Project Management",
		Description: "Plan scope, timelines, and risks to deliver engineering projects.",
		Importance:  model.LevelModerate,
		Rules: []model.MetricRule{
			rule(metric.AttendancePercentage, true, 0.3),
			rule(metric.BreaksPerDay, true, 0.2),
			rule(metric.StressLevel, false, 0.3),
			rule(metric.FocusScore, true, 0.2),
		},
	},
	{
		Name:        "Materials Science",
		Description: "Select and evaluate materials for performance and safety.",
		Importance:  model.LevelHigh,
		Rules: []model.MetricRule{
			rule(metric.StudyHours, true, 0.3),
			rule(metric.FocusScore, true, 0.3),
			rule(metric.SleepHours, true, 0.2),
			rule(metric.AssignmentsCompletedPerWeek, true, 0.2),
		},
	},
}

var subjectData = []model.Subject{
	{Name: "Computer Science", FieldOfStudy: "Computer Science", Description: "Core computing principles, abstraction, and software systems."},
	{Name: "Software Development", FieldOfStudy: "Computer Science", Description: "Software lifecycle, design patterns, and production delivery."},
	{Name: "Introduction to Programming", FieldOfStudy: "Computer Science", Description: "Programming fundamentals, control flow, and problem decomposition."},
	{Name: "Object-Oriented Programming", FieldOfStudy: "Computer Science", Description: "Classes, inheritance, polymorphism, and maintainable code structures."},
	{Name: "Data Structures and Algorithms", FieldOfStudy: "Computer Science", Description: "Foundational algorithms and data structures for efficient software."},
	{Name: "Database Systems", FieldOfStudy: "Computer Science", Description: "Relational modeling, normalization, indexing, and transaction concepts."},
	{Name: "Statistics", FieldOfStudy: "General", Description: "Descriptive and inferential techniques for decision making."},
	{Name: "Data Analysis", FieldOfStudy: "Data Science", Description: "Data cleaning, transformation, exploratory analysis, and interpretation."},
	{Name: "Probability Theory", FieldOfStudy: "General", Description: "Probabilistic modeling and uncertainty estimation techniques."},
	{Name: "Business Intelligence", FieldOfStudy: "Business", Description: "Decision support, KPI tracking, and dashboard-driven communication."},
	{Name: "Information Security", FieldOfStudy: "Computer Science", Description: "Security principles, secure coding, and system hardening practices."},
	{Name: "Computer Networks", FieldOfStudy: "Computer Science", Description: "Network architecture, routing, protocols, and performance analysis."},
	{Name: "Digital Forensics", FieldOfStudy: "Computer Science", Description: "Investigative methods for incident analysis and evidence handling."},
	{Name: "Biology", FieldOfStudy: "Medicine", Description: "Cell biology, physiology, and biological system fundamentals."},
	{Name: "Human Anatomy", FieldOfStudy: "Medicine", Description: "Human body systems and structural relationships in healthcare."},
	{Name: "Clinical Medicine", FieldOfStudy: "Medicine", Description: "Diagnostic reasoning, patient examination, and treatment planning."},
	{Name: "Pharmacology", FieldOfStudy: "Medicine", Description: "Drug mechanisms, interactions, adverse effects, and therapeutics."},
	{Name: "Calculus", FieldOfStudy: "Engineering", Description: "Differential and integral calculus for modeling change and systems."},
	{Name: "Engineering Physics", FieldOfStudy: "Engineering", Description: "Applied mechanics, waves, thermodynamics, and electromagnetism."},
	{Name: "Engineering Design", FieldOfStudy: "Engineering", Description: "Design process, prototyping, constraint analysis, and verification."},
	{Name: "Materials Engineering", FieldOfStudy: "Engineering", Description: "Material properties, failure analysis, and selection tradeoffs."},
	{Name: "Project Planning", FieldOfStudy: "Engineering", Description: "Scheduling, risk planning, and cost-aware project execution."},
}

var linkData = []model.SkillSubjectLink{
	{Skill: "Programming", Subject: "Computer Science", Relevance: model.LevelHigh},
	{Skill: "Programming", Subject: "Software Development", Relevance: model.LevelCritical},
	{Skill: "Programming", Subject: "Introduction to Programming", Relevance: model.LevelCritical},
	{Skill: "Programming", Subject: "Object-Oriented Programming", Relevance: model.LevelHigh},
	{Skill: "Data Structures", Subject: "Data Structures and Algorithms", Relevance: model.LevelCritical},
	{Skill: "Data Structures", Subject: "Computer Science", Relevance: model.LevelHigh},
	{Skill: "Algorithms", Subject: "Data Structures and Algorithms", Relevance: model.LevelCritical},
	{Skill: "Algorithms", Subject: "Calculus", Relevance: model.LevelModerate},
	{Skill: "System Design", Subject: "Software Development", Relevance: model.LevelHigh},
	{Skill: "System Design", Subject: "Database Systems", Relevance: model.LevelHigh},
	{Skill: "Databases", Subject: "Database Systems", Relevance: model.LevelCritical},
	{Skill: "Databases", Subject: "Data Analysis", Relevance: model.LevelModerate},
	{Skill: "Statistics", Subject: "Statistics", Relevance: model.LevelCritical},
	{Skill: "Statistics", Subject: "Probability Theory", Relevance: model.LevelHigh},
	{Skill: "Statistics", Subject: "Data Analysis", Relevance: model.LevelHigh},
	{Skill: "SQL", Subject: "Database Systems", Relevance: model.LevelCritical},
	{Skill: "SQL", Subject: "Data Analysis", Relevance: model.LevelHigh},
	{Skill: "Data Visualization", Subject: "Data Analysis", Relevance: model.LevelHigh},
	{Skill: "Data Visualization", Subject: "Business Intelligence", Relevance: model.LevelCritical},
	{Skill: "Python Programming", Subject: "Introduction to Programming", Relevance: model.LevelHigh},
	{Skill: "Python Programming", Subject: "Data Analysis", Relevance: model.LevelHigh},
	{Skill: "Business Analysis", Subject: "Business Intelligence", Relevance: model.LevelCritical},
	{Skill: "Business Analysis", Subject: "Statistics", Relevance: model.LevelModerate},
	{Skill: "Network Security", Subject: "Information Security", Relevance: model.LevelCritical},
	{Skill: "Network Security", Subject: "Computer Networks", Relevance: model.LevelHigh},
	{Skill: "Threat Analysis", Subject: "Information Security", Relevance: model.LevelHigh},
	{Skill: "Threat Analysis", Subject: "Digital Forensics", Relevance: model.LevelCritical},
	{Skill: "Cryptography", Subject: "Information Security", Relevance: model.LevelCritical},
	{Skill: "Cryptography", Subject: "Calculus", Relevance: model.LevelModerate},
	{Skill: "Incident Response", Subject: "Digital Forensics", Relevance: model.LevelCritical},
	{Skill: "Incident Response", Subject: "Computer Networks", Relevance: model.LevelModerate},
	{Skill: "Ethical Hacking", Subject: "Information Security", Relevance: model.LevelCritical},
	{Skill: "Ethical Hacking", Subject: "Computer Networks", Relevance: model.LevelHigh},
	{Skill: "Biology", Subject: "Biology", Relevance: model.LevelCritical},
	{Skill: "Anatomy", Subject: "Human Anatomy", Relevance: model.LevelCritical},
	{Skill: "Patient Care", Subject: "Clinical Medicine", Relevance: model.LevelCritical},
	{Skill: "Medical Diagnostics", Subject: "Clinical Medicine", Relevance: model.LevelCritical},
	{Skill: "Medical Diagnostics", Subject: "Biology", Relevance: model.LevelModerate},
	{Skill: "Pharmacology", Subject: "Pharmacology", Relevance: model.LevelCritical},
	{Skill: "Mathematics", Subject: "Calculus", Relevance: model.LevelCritical},
	{Skill: "Mathematics", Subject: "Engineering Physics", Relevance: model.LevelHigh},
	{Skill: "Physics", Subject: "Engineering Physics", Relevance: model.LevelCritical},
	{Skill: "CAD Design", Subject: "Engineering Design", Relevance: model.LevelCritical},
	{Skill: "Project Management", Subject: "Project Planning", Relevance: model.LevelCritical},
	{Skill: "Materials Science", Subject: "Materials Engineering", Relevance: model.LevelCritical},
}

var resourceData = map[string][]model.Resource{
	"Computer Science": {
		{Title: "Harvard CS50", URL: "https://cs50.harvard.edu/x/", Provider: "Harvard"},
		{Title: "Teach Yourself CS Guide", URL: "https://teachyourselfcs.com/", Provider: "Open Guide"},
	},
	"Software Development": {
		{Title: "Software Design and Architecture", URL: "https://www.coursera.org/specializations/software-design-architecture", Provider: "Coursera"},
		{Title: "System Design Primer", URL: "https://github.com/donnemartin/system-design-primer", Provider: "GitHub"},
	},
	"Introduction to Programming": {
		{Title: "Python for Everybody", URL: "https://www.py4e.com/", Provider: "PY4E"},
		{Title: "Khan Academy Intro to JS", URL: "https://www.khanacademy.org/computing/computer-programming", Provider: "Khan Academy"},
	},
	"Object-Oriented Programming": {
		{Title: "Object Oriented Programming in Java", URL: "https://www.coursera.org/specializations/object-oriented-programming", Provider: "Coursera"},
		{Title: "Refactoring Guru", URL: "https://refactoring.guru/", Provider: "Refactoring Guru"},
	},
	"Data Structures and Algorithms": {
		{Title: "NeetCode Practice Roadmap", URL: "https://neetcode.io/roadmap", Provider: "NeetCode"},
		{Title: "MIT 6.006 OpenCourseWare", URL: "https://ocw.mit.edu/courses/6-006-introduction-to-algorithms-fall-2011/", Provider: "MIT OpenCourseWare"},
	},
	"Database Systems": {
		{Title: "Mode SQL Tutorial", URL: "https://mode.com/sql-tutorial/", Provider: "Mode"},
		{Title: "Stanford Databases", URL: "https://online.stanford.edu/courses/soe-ydbsdatabases-databases", Provider: "Stanford Online"},
	},
	"Statistics": {
		{Title: "Khan Academy Statistics and Probability", URL: "https://www.khanacademy.org/math/statistics-probability", Provider: "Khan Academy"},
		{Title: "OpenIntro Statistics", URL: "https://www.openintro.org/book/os/", Provider: "OpenIntro"},
	},
	"Data Analysis": {
		{Title: "Google Data Analytics Certificate", URL: "https://www.coursera.org/professional-certificates/google-data-analytics", Provider: "Coursera"},
		{Title: "Kaggle Learn", URL: "https://www.kaggle.com/learn", Provider: "Kaggle"},
	},
	"Probability Theory": {
		{Title: "MIT Probability Course", URL: "https://ocw.mit.edu/courses/18-05-introduction-to-probability-and-statistics-spring-2014/", Provider: "MIT OpenCourseWare"},
		{Title: "Brilliant Probability", URL: "https://brilliant.org/courses/probability/", Provider: "Brilliant"},
	},
	"Business Intelligence": {
		{Title: "Microsoft Power BI Learning", URL: "https://learn.microsoft.com/en-us/training/powerplatform/power-bi/", Provider: "Microsoft Learn"},
		{Title: "Tableau Public Training", URL: "https://public.tableau.com/app/learn/training", Provider: "Tableau"},
	},
	"Information Security": {
		{Title: "Intro to Cybersecurity", URL: "https://www.netacad.com/courses/cybersecurity/introduction-cybersecurity", Provider: "Cisco Networking Academy"},
		{Title: "OWASP Top 10", URL: "https://owasp.org/www-project-top-ten/", Provider: "OWASP"},
	},
	"Computer Networks": {
		{Title: "Computer Networking Course", URL: "https://www.geeksforgeeks.org/computer-network-tutorials/", Provider: "GeeksforGeeks"},
		{Title: "Stanford Networking", URL: "https://online.stanford.edu/courses/soe-ycs0007-computer-networking", Provider: "Stanford Online"},
	},
	"Digital Forensics": {
		{Title: "SANS Digital Forensics Posters", URL: "https://www.sans.org/posters/", Provider: "SANS"},
		{Title: "DFIR Training Repository", URL: "https://www.dfir.training/", Provider: "DFIR Training"},
	},
	"Biology": {
		{Title: "Khan Academy Biology", URL: "https://www.khanacademy.org/science/biology", Provider: "Khan Academy"},
		{Title: "OpenStax Biology", URL: "https://openstax.org/details/books/biology-2e", Provider: "OpenStax"},
	},
	"Human Anatomy": {
		{Title: "AnatomyZone", URL: "https://anatomyzone.com/", Provider: "AnatomyZone"},
		{Title: "TeachMeAnatomy", URL: "https://teachmeanatomy.info/", Provider: "TeachMeSeries"},
	},
	"Clinical Medicine": {
		{Title: "NICE Clinical Knowledge Summaries", URL: "https://cks.nice.org.uk/", Provider: "NICE"},
		{Title: "AMBOSS Learning Cards", URL: "https://www.amboss.com/us/knowledge", Provider: "AMBOSS"},
	},
	"Pharmacology": {
		{Title: "Pharmacology by Osmosis", URL: "https://www.osmosis.org/learn/Pharmacology", Provider: "Osmosis"},
		{Title: "Open Pharmacology Notes", URL: "https://pressbooks.umn.edu/pharmacology/", Provider: "Open Textbook"},
	},
	"Calculus": {
		{Title: "Khan Academy Calculus", URL: "https://www.khanacademy.org/math/calculus-1", Provider: "Khan Academy"},
		{Title: "MIT Single Variable Calculus", URL: "https://ocw.mit.edu/courses/18-01sc-single-variable-calculus-fall-2010/", Provider: "MIT OpenCourseWare"},
	},
	"Engineering Physics": {
		{Title: "MIT Physics I", URL: "https://ocw.mit.edu/courses/8-01sc-classical-mechanics-fall-2016/", Provider: "MIT OpenCourseWare"},
		{Title: "The Engineering Mindset Physics", URL: "https://theengineeringmindset.com/category/physics/", Provider: "The Engineering Mindset"},
	},
	"Engineering Design": {
		{Title: "Autodesk Design Academy", URL: "https://www.autodesk.com/education/edu-software/overview", Provider: "Autodesk"},
		{Title: "SolidWorks Tutorials", URL: "https://my.solidworks.com/training", Provider: "SolidWorks"},
	},
	"Materials Engineering": {
		{Title: "Introduction to Materials Science", URL: "https://ocw.mit.edu/courses/3-091sc-introduction-to-solid-state-chemistry-fall-2010/", Provider: "MIT OpenCourseWare"},
		{Title: "Materials Project", URL: "https://materialsproject.org/", Provider: "Materials Project"},
	},
	"Project Planning": {
		{Title: "Google Project Management", URL: "https://www.coursera.org/professional-certificates/google-project-management", Provider: "Coursera"},
		{Title: "PMI Fundamentals", URL: "https://www.pmi.org/learning/training-development", Provider: "PMI"},
	},
}
