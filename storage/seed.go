package storage

import (
	"topzone/models"
	"topzone/utils/logger"
)

func flag(v int) *int { return &v }

// Seed loads the storefront fixtures through the store interface:
// four games, package lists for Mobile Legends and Free Fire, three
// testimonials and five FAQs. It works against any Storage, so the
// Postgres store reuses it after its empty-database check.
func Seed(s Storage) error {
	games := []models.InsertGame{
		{
			Name:        "Mobile Legends",
			Slug:        "mobile-legends",
			Description: "Get instant diamonds for Mobile Legends: Bang Bang. Purchase heroes, skins, and other premium content.",
			Currency:    "Diamonds",
			ImageURL:    "https://images.unsplash.com/photo-1542751371-adc38448a05e?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=240",
			IsPopular:   flag(1),
		},
		{
			Name:        "Free Fire",
			Slug:        "free-fire",
			Description: "Top up Free Fire diamonds instantly. Get the latest characters, weapons, and cosmetics.",
			Currency:    "Diamonds",
			ImageURL:    "https://images.unsplash.com/photo-1511512578047-dfb367046420?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=240",
			IsPopular:   flag(1),
		},
		{
			Name:        "PUBG Mobile",
			Slug:        "pubg-mobile",
			Description: "Purchase UC for PUBG Mobile. Unlock premium battle passes, skins, and exclusive items.",
			Currency:    "UC",
			ImageURL:    "https://images.unsplash.com/photo-1552820728-8b83bb6b773f?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=240",
			IsPopular:   flag(1),
		},
		{
			Name:        "Genshin Impact",
			Slug:        "genshin-impact",
			Description: "Get Genesis Crystals for Genshin Impact. Summon new characters and get exclusive items.",
			Currency:    "Genesis Crystals",
			ImageURL:    "https://images.unsplash.com/photo-1578662996442-48f60103fc96?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=240",
			IsPopular:   flag(1),
		},
	}

	gameIDs := make([]string, 0, len(games))
	for _, in := range games {
		game, err := s.CreateGame(in)
		if err != nil {
			return err
		}
		gameIDs = append(gameIDs, game.ID)
	}

	mlGameID := gameIDs[0]
	ffGameID := gameIDs[1]

	packages := []models.InsertPackage{
		{GameID: mlGameID, Name: "86 Diamonds", Amount: 86, Price: 15000, IsPopular: flag(0)},
		{GameID: mlGameID, Name: "172 Diamonds", Amount: 172, Price: 28000, IsPopular: flag(1)},
		{GameID: mlGameID, Name: "257 Diamonds", Amount: 257, Price: 42000, IsPopular: flag(0)},
		{GameID: mlGameID, Name: "344 Diamonds", Amount: 344, Price: 56000, IsPopular: flag(0)},
		{GameID: ffGameID, Name: "100 Diamonds", Amount: 100, Price: 12000, IsPopular: flag(0)},
		{GameID: ffGameID, Name: "210 Diamonds", Amount: 210, Price: 25000, IsPopular: flag(1)},
		{GameID: ffGameID, Name: "355 Diamonds", Amount: 355, Price: 40000, IsPopular: flag(0)},
		{GameID: ffGameID, Name: "720 Diamonds", Amount: 720, Price: 80000, IsPopular: flag(0)},
	}

	for _, in := range packages {
		if _, err := s.CreatePackage(in); err != nil {
			return err
		}
	}

	testimonials := []models.InsertTestimonial{
		{
			CustomerName: "Ahmad Rahman",
			Rating:       5,
			Comment:      "Super cepat dan mudah! Diamonds langsung masuk dalam hitungan menit. Recommended banget!",
			IsActive:     flag(1),
		},
		{
			CustomerName: "Siti Nurhaliza",
			Rating:       5,
			Comment:      "Pelayanan customer service sangat baik dan responsif. Harga juga kompetitif dibanding tempat lain.",
			IsActive:     flag(1),
		},
		{
			CustomerName: "Budi Santoso",
			Rating:       5,
			Comment:      "Udah langganan top-up di sini. Selalu trusted dan gak pernah ada masalah. Top!",
			IsActive:     flag(1),
		},
	}

	for _, in := range testimonials {
		if _, err := s.CreateTestimonial(in); err != nil {
			return err
		}
	}

	faqs := []models.InsertFaq{
		{
			Question: "How long does delivery take?",
			Answer:   "Most orders are processed within 1-5 minutes. During peak hours, it may take up to 15 minutes. You'll receive instant notification once your order is complete.",
			IsActive: flag(1),
		},
		{
			Question: "Is my payment information secure?",
			Answer:   "Yes, we use industry-standard encryption and work with trusted payment providers to ensure your information is completely secure.",
			IsActive: flag(1),
		},
		{
			Question: "What if I enter wrong User ID?",
			Answer:   "Please double-check your User ID before submitting. If you've made an error, contact our support team immediately with your order ID and we'll help resolve the issue.",
			IsActive: flag(1),
		},
		{
			Question: "Do you offer refunds?",
			Answer:   "Refunds are available within 24 hours if the order hasn't been processed yet. Once credits are delivered to your game account, refunds are not possible due to the nature of digital goods.",
			IsActive: flag(1),
		},
		{
			Question: "What payment methods do you accept?",
			Answer:   "We accept QRIS, DANA, OVO, Bank Transfer, and major credit cards. All payments are processed securely through our trusted payment partners.",
			IsActive: flag(1),
		},
	}

	for _, in := range faqs {
		if _, err := s.CreateFaq(in); err != nil {
			return err
		}
	}

	logger.Infof("Seeded %d games, %d packages, %d testimonials, %d FAQs",
		len(games), len(packages), len(testimonials), len(faqs))
	return nil
}
