package templates

const (
	classicSummary = "Results-driven professional with extensive experience in delivering high-impact solutions. " +
		"Proven track record of exceeding targets and driving business growth. " +
		"Excellent communicator and collaborative team player with strong analytical skills."

	classicExperience1 = "Led development of cloud-based applications serving 100K+ users. " +
		"Mentored junior developers and established coding standards. " +
		"Improved system performance by 40% through optimization initiatives."

	classicExperience2 = "Developed and maintained multiple web applications using modern frameworks. " +
		"Collaborated with cross-functional teams to deliver projects on time. " +
		"Implemented automated testing reducing bugs by 60%."

	classicEducation = "Graduated with honors. Relevant coursework: Data Structures, Algorithms, " +
		"Software Engineering, Database Systems."

	modernSummary = "Results-driven professional with extensive experience in delivering high-impact solutions. " +
		"Proven track record of exceeding targets and driving business growth."

	modernExperience = "Led development of cloud-based applications. " +
		"Mentored junior developers and established coding standards."

	minimalistSummary = modernSummary

	minimalistExperience = "Led development of cloud-based applications. Mentored junior developers."

	eliteSummary = "Results-driven executive with extensive experience in delivering high-impact solutions. " +
		"Proven track record of exceeding targets and driving business growth. " +
		"Strategic leader with strong analytical skills and excellent communication abilities."

	eliteExperience = "Led development of cloud-based applications. Mentored junior developers and established coding standards.\n" +
		"- Improved system performance by 40% through optimization initiatives\n" +
		"- Led development of cloud-based applications serving 100K+ users\n" +
		"- Established coding standards and best practices"
)
