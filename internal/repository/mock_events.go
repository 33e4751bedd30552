package repository

import (
	"time"

	"github.com/abhscancode/cluedin/internal/model"
)

// MockEvents returns the built-in catalog with dates relative to now.
func MockEvents(now time.Time) []model.Event {
	day := func(offset int) time.Time {
		return now.AddDate(0, 0, offset).UTC()
	}

	return []model.Event{
		{
			ID:          "1",
			Title:       "Global Economic Summit 2024",
			Description: "Leaders from around the world convene to discuss pressing economic challenges and future growth strategies. Key topics include sustainable development, digital transformation, and international trade policies. This summit aims to foster collaboration and innovative solutions for a resilient global economy.",
			Date:        day(30),
			Category:    model.CategoryGovernance,
			Source:      "World Economic Forum",
		},
		{
			ID:          "2",
			Title:       `International Film Festival "CineMagic"`,
			Description: "A week-long celebration of cinema featuring premieres from acclaimed directors and emerging talents. Includes workshops, panel discussions, and red carpet events. CineMagic showcases a diverse range of genres, promoting artistic expression and cultural exchange through film.",
			Date:        day(7),
			Category:    model.CategoryEntertainment,
			Source:      "CineMagic Organization",
		},
		{
			ID:          "3",
			Title:       "Tech Innovators Conference (TIC 2024)",
			Description: "The annual TIC brings together tech enthusiasts, developers, and entrepreneurs to explore the latest advancements in AI, blockchain, and IoT. Features keynote speeches, hands-on labs, and networking opportunities. Discover the future of technology and its impact on various industries.",
			Date:        day(15),
			Category:    model.CategoryPublicInterest,
			Source:      "TechCrunch",
		},
		{
			ID:          "4",
			Title:       `Modern Art Exhibition: "FutureScapes"`,
			Description: "An immersive art exhibition showcasing contemporary artists who explore themes of future societies and technological impact through various mediums. Interactive installations and thought-provoking pieces invite visitors to reflect on the evolving human experience.",
			Date:        day(-5),
			Category:    model.CategoryCulture,
			Source:      "City Art Museum",
		},
		{
			ID:          "5",
			Title:       "National Youth Climate Action Forum",
			Description: "Young activists and environmental experts gather to discuss strategies for climate change mitigation and adaptation. The forum aims to empower youth voices and drive policy change for a sustainable future. Workshops focus on community organizing and green initiatives.",
			Date:        day(45),
			Category:    model.CategorySociety,
			Source:      "Youth Climate Council",
		},
		{
			ID:          "6",
			Title:       "Unity Music Festival",
			Description: "A three-day outdoor music festival featuring a diverse lineup of international and local artists across multiple genres. Celebrating music, community, and cultural diversity with food stalls, art installations, and interactive experiences.",
			Date:        day(60),
			Category:    model.CategoryEntertainment,
			Source:      "Unity Events Co.",
		},
		{
			ID:          "7",
			Title:       "Urban Planning & Development Symposium",
			Description: "Experts in urban design, architecture, and public policy discuss sustainable urban development, smart city technologies, and community engagement. Case studies and innovative solutions for future cities will be presented.",
			Date:        day(-10),
			Category:    model.CategoryGovernance,
			Source:      "Institute for Urban Futures",
		},
		{
			ID:          "8",
			Title:       "Heritage Conservation Workshop",
			Description: "A hands-on workshop focused on preserving cultural heritage sites and artifacts. Participants will learn about conservation techniques, historical research, and the importance of safeguarding cultural identity for future generations.",
			Date:        day(20),
			Category:    model.CategoryCulture,
			Source:      "National Trust",
		},
		{
			ID:          "9",
			Title:       "Digital Literacy for All Initiative Launch",
			Description: "Launch event for a nationwide initiative aimed at improving digital literacy skills across all age groups. The program will offer free workshops, online resources, and community support to bridge the digital divide.",
			Date:        day(2),
			Category:    model.CategorySociety,
			Source:      "Ministry of Education & Technology",
		},
		{
			ID:          "10",
			Title:       "Open Source Software Summit",
			Description: "A gathering of developers, contributors, and advocates for open source software. Discussions on the latest trends, challenges, and collaborative projects in the open source ecosystem. Promoting innovation and knowledge sharing.",
			Date:        day(-2),
			Category:    model.CategoryPublicInterest,
			Source:      "Open Source Foundation",
		},
	}
}
