package main

import (
	"log"
	"log/slog"
	"os"

	"menumatch/internal/config"
	"menumatch/internal/database"
	"menumatch/internal/models"
	"menumatch/internal/nlp"
	"menumatch/internal/repositories"
	"menumatch/internal/services"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type standardMenuSeed struct {
	name     string
	category string
}

var standardMenuSeeds = []standardMenuSeed{
	// 한식 찌개류
	{"김치찌개", "한식-찌개"},
	{"된장찌개", "한식-찌개"},
	{"순두부찌개", "한식-찌개"},
	{"부대찌개", "한식-찌개"},
	{"청국장", "한식-찌개"},
	// 한식 밥류
	{"비빔밥", "한식-밥"},
	{"돌솥비빔밥", "한식-밥"},
	{"김치볶음밥", "한식-밥"},
	{"제육덮밥", "한식-밥"},
	// 한식 고기
	{"삼겹살", "한식-고기"},
	{"목살", "한식-고기"},
	{"갈비", "한식-고기"},
	{"불고기", "한식-고기"},
	// 중식
	{"짜장면", "중식"},
	{"짬뽕", "중식"},
	{"탕수육", "중식"},
	{"볶음밥", "중식"},
	// 치킨
	{"치킨", "치킨"},
	{"후라이드치킨", "치킨"},
	{"양념치킨", "치킨"},
	{"간장치킨", "치킨"},
	{"두마리치킨", "치킨"},
	{"반반치킨", "치킨"},
	{"순살치킨", "치킨"},
}

type sampleMenuSeed struct {
	originalName string
	restaurant   string
	price        int64
}

var sampleMenuSeeds = []sampleMenuSeed{
	// 다양한 형태의 김치찌개
	{"얼큰 김치찌개 1인분", "백년식당", 8000},
	{"김치찌개(特)", "맛나분식", 9000},
	{"돼지고기 김치찌개", "서울밥상", 8500},
	{"김치찌개 2인분", "백년식당", 15000},
	// 된장찌개
	{"구수한 된장찌개", "백년식당", 7000},
	{"된장찌개 [추천]", "맛나분식", 7500},
	// 비빔밥
	{"석쇠 비빔밥", "전주회관", 9000},
	{"비빔밥 (야채 많이)", "전주회관", 9000},
	{"돌솥비빔밥 大", "한옥마을", 10000},
	// 삼겹살
	{"한돈 삼겹살 200g", "고기굽는집", 13000},
	{"삼겹살 구이", "고기굽는집", 12000},
	// 치킨
	{"후라이드 치킨 (순살)", "치킨나라", 16000},
	{"양념 치킨", "치킨나라", 17000},
	// 중식
	{"간짜장", "만리장성", 6000},
	{"해물 짬뽕", "만리장성", 8000},
	{"탕수육 (소)", "만리장성", 15000},
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	db, err := database.Initialize(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	menuRepo := repositories.NewMenuRepository(db)
	standardMenuRepo := repositories.NewStandardMenuRepository(db)
	historyRepo := repositories.NewMatchingHistoryRepository(db)
	restaurantRepo := repositories.NewRestaurantRepository(db)

	var tokenizer nlp.Tokenizer
	if dict, err := nlp.NewDictionaryTokenizer(cfg.NLP.DictionaryPath); err == nil {
		tokenizer = dict
	}
	embedder, err := nlp.NewEmbeddingEngine(cfg.NLP.VectorModelPath)
	if err != nil {
		log.Fatalf("Failed to load vector model: %v", err)
	}

	matchingService := services.NewMatchingService(
		standardMenuRepo,
		menuRepo,
		historyRepo,
		tokenizer,
		embedder,
		cfg.NLP.CategoryDefaults,
		services.NewPrometheusMetrics(),
		logger,
	)

	seedStandardMenus(standardMenuRepo)
	seedMenus(restaurantRepo, matchingService)
	printStatistics(menuRepo, standardMenuRepo)
}

func seedStandardMenus(repo repositories.StandardMenuRepositoryInterface) {
	log.Println("Creating standard menus...")

	created := 0
	for _, seed := range standardMenuSeeds {
		menu := &models.StandardMenu{
			Name:           seed.name,
			NormalizedName: nlp.Normalize(seed.name),
			Category:       seed.category,
			IsActive:       true,
		}

		err := repo.Create(menu)
		if err == repositories.ErrStandardMenuAlreadyExists {
			continue
		}
		if err != nil {
			log.Fatalf("Failed to create standard menu %s: %v", seed.name, err)
		}
		created++
	}

	log.Printf("Created %d standard menus", created)
}

func seedMenus(restaurants repositories.RestaurantRepositoryInterface, matcher services.MatchingServiceInterface) {
	log.Println("Creating and matching sample menus...")

	restaurantIDs := make(map[string]*models.Restaurant)
	for _, seed := range sampleMenuSeeds {
		if _, ok := restaurantIDs[seed.restaurant]; ok {
			continue
		}

		restaurant := &models.Restaurant{
			Name:     seed.restaurant,
			Address:  gofakeit.Address().Address,
			Phone:    gofakeit.Phone(),
			Category: "한식",
			IsActive: true,
		}
		if err := restaurants.Create(restaurant); err != nil {
			log.Fatalf("Failed to create restaurant %s: %v", seed.restaurant, err)
		}
		restaurantIDs[seed.restaurant] = restaurant
	}

	matched := 0
	for _, seed := range sampleMenuSeeds {
		restaurant := restaurantIDs[seed.restaurant]
		price := decimal.NewNullDecimal(decimal.NewFromInt(seed.price))

		menu, err := matcher.CreateAndMatch(seed.originalName, restaurant.ID, price, "")
		if err != nil {
			log.Printf("Failed to create menu %q: %v", seed.originalName, err)
			continue
		}

		if menu.IsMatched() {
			matched++
			log.Printf("MATCHED (%.2f): %s", *menu.MatchConfidence, seed.originalName)
		} else {
			log.Printf("NOT MATCHED: %s", seed.originalName)
		}
	}

	log.Printf("Created %d sample menus, %d matched", len(sampleMenuSeeds), matched)
}

func printStatistics(menus repositories.MenuRepositoryInterface, standardMenus repositories.StandardMenuRepositoryInterface) {
	total, err := menus.Count()
	if err != nil {
		log.Fatalf("Failed to count menus: %v", err)
	}
	matched, err := menus.CountMatched()
	if err != nil {
		log.Fatalf("Failed to count matched menus: %v", err)
	}
	active, err := standardMenus.ListActive()
	if err != nil {
		log.Fatalf("Failed to list standard menus: %v", err)
	}

	rate := 0.0
	if total > 0 {
		rate = float64(matched) / float64(total) * 100
	}

	log.Printf("Standard menus: %d", len(active))
	log.Printf("Menus: %d, matched: %d (%.1f%%)", total, matched, rate)
}
