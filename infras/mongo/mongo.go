package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"visitpazar/config"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var ErrDatabaseUnavailable = errors.New("database not available")

const defaultQueryTimeout = 10 * time.Second

// Connection is the process wide MongoDB handle. Client is nil when no
// connection could be established and DB is nil when, in addition, no
// database name is configured. Both cases are the degraded mode: reads and
// writes fail with ErrDatabaseUnavailable while the process keeps serving.
type Connection struct {
	Client       *mongo.Client
	DB           *mongo.Database
	queryTimeout time.Duration
}

func New(config *config.Config) *Connection {
	mongoConfig := config.DB.Mongo
	conn := &Connection{queryTimeout: seconds(mongoConfig.QueryTimeoutSeconds, defaultQueryTimeout)}

	if mongoConfig.URL == "" {
		log.Warn().Msg("DATABASE_URL not set, running without database")

		return conn
	}

	conn.Client = connect(mongoConfig.URL, mongoConfig.MaxRetry, mongoConfig.RetryWaitTime, seconds(mongoConfig.ConnectTimeoutSeconds, defaultQueryTimeout))
	if conn.Client == nil {
		return conn
	}

	if mongoConfig.Name == "" {
		log.Warn().Msg("DATABASE_NAME not set, database handle not initialized")

		return conn
	}

	conn.DB = conn.Client.Database(mongoConfig.Name)

	log.Info().Str("dbName", mongoConfig.Name).Msg("Connected to database")

	return conn
}

// NewFromDatabase wraps an existing database handle.
func NewFromDatabase(db *mongo.Database, queryTimeout time.Duration) *Connection {
	conn := &Connection{DB: db, queryTimeout: queryTimeout}
	if db != nil {
		conn.Client = db.Client()
	}

	return conn
}

func connect(uri string, maxRetry, waitTime int, timeout time.Duration) *mongo.Client {
	clientOptions := options.Client().
		ApplyURI(uri).
		SetConnectTimeout(timeout).
		SetServerSelectionTimeout(timeout)

	for retry := range max(maxRetry, 1) {
		if retry > 0 {
			time.Sleep(time.Duration(waitTime) * time.Second)
		}

		client, err := ping(clientOptions, timeout)
		if err == nil {
			return client
		}

		log.
			Error().
			Err(err).
			Int("attempt", retry+1).
			Msg("Failed connecting to database")
	}

	return nil
}

func ping(clientOptions *options.ClientOptions, timeout time.Duration) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())

		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return client, nil
}

func seconds(value int, fallback time.Duration) time.Duration {
	if value <= 0 {
		return fallback
	}

	return time.Duration(value) * time.Second
}

// Available reports whether a database handle exists.
func (c *Connection) Available() bool {
	return c != nil && c.DB != nil
}

// Connected reports whether a client could reach the server at startup.
func (c *Connection) Connected() bool {
	return c != nil && c.Client != nil
}

// Name returns the configured database name, empty in degraded mode.
func (c *Connection) Name() string {
	if !c.Available() {
		return ""
	}

	return c.DB.Name()
}

// Collection returns the named collection or ErrDatabaseUnavailable.
func (c *Connection) Collection(name string) (*mongo.Collection, error) {
	if !c.Available() {
		return nil, ErrDatabaseUnavailable
	}

	return c.DB.Collection(name), nil
}

// CollectionNames lists the collections of the database.
func (c *Connection) CollectionNames(ctx context.Context) ([]string, error) {
	if !c.Available() {
		return nil, ErrDatabaseUnavailable
	}

	ctx, cancel := c.WithTimeout(ctx)
	defer cancel()

	names, err := c.DB.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}

	return names, nil
}

// WithTimeout bounds a single storage round trip.
func (c *Connection) WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := defaultQueryTimeout
	if c != nil && c.queryTimeout > 0 {
		timeout = c.queryTimeout
	}

	return context.WithTimeout(ctx, timeout)
}

// Close disconnects the client, if any.
func (c *Connection) Close(ctx context.Context) error {
	if !c.Connected() {
		return nil
	}

	if err := c.Client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect from database: %w", err)
	}

	return nil
}
