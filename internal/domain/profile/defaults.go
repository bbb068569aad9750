package profile

import "time"

// Default returns the document created on first read, populated with the
// site's original static content rather than empty fields. After the first
// Get, "no profile yet" and "profile with defaults" are indistinguishable.
func Default(now time.Time) *Profile {
	p := &Profile{
		Alias:       "Chilly",
		Designation: "Software Engineer",
		Tagline:     "Building digital artifacts.",
		BioLong: "My name is Sharaf Hazem, and I am a software engineering student with experience in web development " +
			"and a passion for learning new technologies in Gaza, aged 20. I convert ideas into well-designed digital " +
			"products using JavaScript, React, React Native, TypeScript, Next.js, and PHP programming languages.",
		Avatar:     "/images/lucial-avatar1.png",
		AboutImage: "/images/lucial-avatar1.png",
		MissionBriefing: "I am a creative Software Engineer with a passion for building immersive digital experiences. " +
			"My journey began with a curiosity for how things work, which quickly evolved into an obsession with clean " +
			"code and futuristic UI design.\n\nWhen I'm not coding, I'm exploring new tech, designing 3D assets, or " +
			"leveling up in the latest RPGs.",
		ExperienceLog: []ExperienceCard{
			{Title: "Senior Developer", Type: "Tech Corp", Desc: "Leading frontend architecture and 3D web implementations."},
			{Title: "Web Designer", Type: "Creative Studio", Desc: "Designed and developed award-winning portfolio sites."},
			{Title: "Freelancer", Type: "Self-Employed", Desc: "Full-stack development for international clients."},
		},
		StatusMode: StatusOpen,
		StatusMsg:  "SYSTEM ONLINE",
		Protocols: Protocols{
			Title:   "System Protocols",
			Version: "3.0.0 (Live)",
		},
		LastSync: now,
	}
	p.Normalize()
	return p
}
