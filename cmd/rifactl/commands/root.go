package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/rifaapp/rifa-api/cmd/app"
	"github.com/rifaapp/rifa-api/internal/config"
	"github.com/rifaapp/rifa-api/internal/db"
	"github.com/rifaapp/rifa-api/internal/events"
	"github.com/rifaapp/rifa-api/internal/logger"
	"github.com/rifaapp/rifa-api/internal/repository"
	"github.com/rifaapp/rifa-api/internal/repository/dao"
	"github.com/rifaapp/rifa-api/internal/service"
)

var (
	// Global flags
	configPath string
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "rifactl",
	Short: "Operator tool for the raffle API",
	Long: `rifactl runs maintenance tasks against the raffle database using the
same configuration file as the API server.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", app.ConfigPath(), "Path to the YAML config file")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
}

// env holds what every database command needs. close releases it.
type env struct {
	conf      *config.AppConfig
	db        *gorm.DB
	publisher service.EventPublisher
	close     func()
}

func setup() (*env, error) {
	conf, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return nil, fmt.Errorf("failed to initialize logger -> %w", err)
	}
	if err = logger.SetLevel(conf.API.LogLevel); err != nil {
		return nil, err
	}

	postgresDB, err := app.OpenDatabase(conf)
	if err != nil {
		return nil, fmt.Errorf("failed to open database -> %w", err)
	}

	e := &env{
		conf:      conf,
		db:        postgresDB,
		publisher: events.Nop{},
	}

	var kafka *events.KafkaPublisher
	if len(conf.Kafka.Brokers) > 0 {
		kafka = events.NewKafkaPublisher(conf.Kafka.Brokers, conf.Kafka.Topic, conf.Kafka.PublishTimeout)
		e.publisher = kafka
	}

	e.close = func() {
		if kafka != nil {
			_ = kafka.Close()
		}
		_ = db.Close(postgresDB)
	}

	return e, nil
}

func (e *env) reservations() *service.ReservationService {
	repo := repository.NewReservationRepository(dao.NewReservationDAO(e.db))
	return service.NewReservationService(repo, e.publisher)
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
