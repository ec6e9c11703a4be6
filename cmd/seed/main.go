package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"praxis/internal/config"
	"praxis/internal/model"
	"praxis/internal/platform/logger"
	"praxis/internal/repository"
)

// Seeds the catalogs, a card deck and a demo template so the API is
// usable right after a fresh install.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("failed to connect to MongoDB", "error", err)
	}
	defer mongoClient.Disconnect(ctx)

	if err := mongoClient.Ping(ctx, nil); err != nil {
		log.Fatal("failed to ping MongoDB", "error", err)
	}

	db := mongoClient.Database(cfg.MongoDB)
	catalogRepo := repository.NewCatalogRepo(db)
	deckRepo := repository.NewDeckRepo(db)
	templateRepo := repository.NewTemplateRepo(db)

	remedies := []*model.Remedy{
		{ID: uuid.NewString(), Name: "Lavender essence", Tags: []string{"anxiety", "sleep"}, Price: 18.50},
		{ID: uuid.NewString(), Name: "Magnesium complex", Tags: []string{"stress", "fatigue"}, Price: 24.00},
		{ID: uuid.NewString(), Name: "Valerian drops", Tags: []string{"sleep", "calm"}, Price: 15.90},
	}
	for _, r := range remedies {
		if err := catalogRepo.InsertRemedy(ctx, r); err != nil {
			log.Fatal("insert remedy", "name", r.Name, "error", err)
		}
	}
	log.Info("seeded remedies", "count", len(remedies))

	programs := []*model.Program{
		{ID: uuid.NewString(), Name: "Stress release program", Tags: []string{"stress", "anxiety"}, Sessions: 6},
		{ID: uuid.NewString(), Name: "Sleep recovery program", Tags: []string{"sleep"}, Sessions: 4},
	}
	for _, p := range programs {
		if err := catalogRepo.InsertProgram(ctx, p); err != nil {
			log.Fatal("insert program", "name", p.Name, "error", err)
		}
	}
	log.Info("seeded programs", "count", len(programs))

	deck := &model.Deck{
		ID:   uuid.NewString(),
		Name: "Inner compass",
		Cards: []model.Card{
			{Name: "The Anchor", Description: "Stability and grounding."},
			{Name: "The Wave", Description: "Letting emotions move through."},
			{Name: "The Lantern", Description: "Clarity on the next step."},
			{Name: "The Bridge", Description: "A transition underway."},
			{Name: "The Garden", Description: "Growth that needs tending."},
		},
		Positions: []model.DeckPosition{
			{Number: 1, Meaning: "Where you are"},
			{Number: 2, Meaning: "What holds you back"},
			{Number: 3, Meaning: "What supports you"},
		},
	}
	if err := deckRepo.Insert(ctx, deck); err != nil {
		log.Fatal("insert deck", "error", err)
	}
	log.Info("seeded deck", "name", deck.Name)

	template := demoTemplate(deck.ID)
	if err := templateRepo.Create(ctx, template); err != nil {
		log.Fatal("insert template", "error", err)
	}
	log.Info("seeded template", "name", template.Name, "blocks", len(template.Blocks))
}

func demoTemplate(deckID string) *model.Template {
	return &model.Template{
		ID:          uuid.NewString(),
		CounselorID: "counselor",
		Name:        "Initial assessment",
		Blocks: []model.Block{
			{
				ID:    uuid.NewString(),
				Type:  model.BlockScale,
				Title: "Well-being check",
				SubQuestions: []model.SubQuestion{
					{ID: uuid.NewString(), Text: "Sleep quality"},
					{ID: uuid.NewString(), Text: "Energy level"},
					{ID: uuid.NewString(), Text: "Stress resilience"},
					{ID: uuid.NewString(), Text: "Mood stability"},
				},
			},
			{
				ID:       uuid.NewString(),
				Type:     model.BlockFreeText,
				Title:    "Context",
				Question: "What brings you here today?",
			},
			{
				ID:    uuid.NewString(),
				Type:  model.BlockScoredOutcome,
				Title: "Stress profile",
				Questions: []model.BlockQuestion{
					{
						ID:   uuid.NewString(),
						Text: "How do you react under pressure?",
						Answers: []model.BlockAnswer{
							{ID: uuid.NewString(), Text: "I freeze", Value: "avoidant"},
							{ID: uuid.NewString(), Text: "I push through", Value: "driven"},
						},
					},
					{
						ID:   uuid.NewString(),
						Text: "At the end of a hard day you...",
						Answers: []model.BlockAnswer{
							{ID: uuid.NewString(), Text: "Withdraw", Value: "avoidant"},
							{ID: uuid.NewString(), Text: "Keep working", Value: "driven"},
						},
					},
					{
						ID:   uuid.NewString(),
						Text: "Deadlines make you...",
						Answers: []model.BlockAnswer{
							{ID: uuid.NewString(), Text: "Anxious", Value: "avoidant"},
							{ID: uuid.NewString(), Text: "Focused", Value: "driven"},
						},
					},
				},
				Outcomes: []model.Outcome{
					{Value: "avoidant", Text: "You tend to absorb pressure inward. Recovery rituals matter most."},
					{Value: "driven", Text: "You convert pressure into output. Watch for depletion."},
				},
			},
			{
				ID:     uuid.NewString(),
				Type:   model.BlockCardDraw,
				Title:  "Card reading",
				DeckID: deckID,
			},
			{
				ID:    uuid.NewString(),
				Type:  model.BlockMatch,
				Title: "Recommendations",
			},
		},
	}
}
