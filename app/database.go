package app

import (
	"context"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"

	lock "github.com/square/mongo-lock"

	"github.com/dan13ram/scout-mint-validator/models"
)

const CollectionLocks = "locks"

type Database interface {
	Connect() error
	SetupLocker() error
	SetupIndexes() error
	Disconnect() error

	InsertOne(collection string, data interface{}) (primitive.ObjectID, error)
	FindOne(collection string, filter interface{}, result interface{}) error
	FindMany(collection string, filter interface{}, result interface{}) error
	FindManySorted(collection string, filter interface{}, sort interface{}, limit int64, result interface{}) error
	// UpdateOne returns the number of matched documents
	UpdateOne(collection string, filter interface{}, update interface{}) (int64, error)
	UpdateMany(collection string, filter interface{}, update interface{}) (int64, error)
	UpsertOne(collection string, filter interface{}, update interface{}) (primitive.ObjectID, error)
	CountDocuments(collection string, filter interface{}) (int64, error)

	XLock(resourceId string) (string, error)
	Unlock(lockId string) error
}

// mongoDatabase is a wrapper around the mongo database
type mongoDatabase struct {
	db       *mongo.Database
	uri      string
	database string
	timeout  time.Duration
	locker   *lock.Client
}

var (
	DB Database
)

func (d *mongoDatabase) context() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d.timeout)
}

// Connect connects to the database
func (d *mongoDatabase) Connect() error {
	log.Debug("[DB] Connecting to database")
	wcMajority := writeconcern.Majority()
	wcMajority.WTimeout = d.timeout

	ctx, cancel := d.context()
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(d.uri).SetWriteConcern(wcMajority))
	if err != nil {
		return err
	}
	d.db = client.Database(d.database)

	log.Info("[DB] Connected to mongo database: ", d.database)
	return nil
}

// SetupLocker sets up the locker
func (d *mongoDatabase) SetupLocker() error {
	log.Debug("[DB] Setting up locker")

	ctx, cancel := d.context()
	defer cancel()

	locker := lock.NewClient(d.db.Collection(CollectionLocks))
	if err := locker.CreateIndexes(ctx); err != nil {
		return err
	}
	d.locker = locker

	log.Info("[DB] Locker setup")
	return nil
}

// XLock locks a resource for exclusive access
func (d *mongoDatabase) XLock(resourceId string) (string, error) {
	ctx, cancel := d.context()
	defer cancel()

	lockId := uuid.NewString()
	err := d.locker.XLock(ctx, resourceId, lockId, lock.LockDetails{TTL: 60})
	return lockId, err
}

// Unlock unlocks a resource
func (d *mongoDatabase) Unlock(lockId string) error {
	ctx, cancel := d.context()
	defer cancel()

	_, err := d.locker.Unlock(ctx, lockId)
	return err
}

type indexSpec struct {
	collection string
	keys       bson.D
	unique     bool
}

var indexSpecs = []indexSpec{
	// duplicate submissions of one hash are kept, so this index is not unique
	{models.CollectionPendingTransactions, bson.D{{Key: "source_chain_tx_hash", Value: 1}}, false},
	{models.CollectionPendingTransactions, bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: 1}}, false},
	{models.CollectionNFTPurchaseEvents, bson.D{{Key: "source_chain_tx_hash", Value: 1}}, true},
	{models.CollectionNFTPurchaseEvents, bson.D{{Key: "attestation_uid", Value: 1}}, false},
	{models.CollectionPointsReceipts, bson.D{{Key: "source", Value: 1}}, true},
	{models.CollectionPointsReceipts, bson.D{{Key: "recipient_id", Value: 1}, {Key: "season", Value: 1}, {Key: "claimed_at", Value: 1}}, false},
	{models.CollectionClaimScreens, bson.D{{Key: "user_id", Value: 1}, {Key: "week", Value: 1}}, true},
	{models.CollectionHealthChecks, bson.D{{Key: "wallet_address", Value: 1}, {Key: "hostname", Value: 1}}, true},
}

// SetupIndexes creates the indexes for every collection
func (d *mongoDatabase) SetupIndexes() error {
	log.Debug("[DB] Setting up indexes")

	for _, spec := range indexSpecs {
		log.Debug("[DB] Setting up indexes for ", spec.collection)
		ctx, cancel := d.context()
		_, err := d.db.Collection(spec.collection).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    spec.keys,
			Options: options.Index().SetUnique(spec.unique),
		})
		cancel()
		if err != nil {
			return err
		}
	}

	log.Info("[DB] Indexes setup")
	return nil
}

// Disconnect disconnects from the database
func (d *mongoDatabase) Disconnect() error {
	log.Debug("[DB] Disconnecting from database")
	ctx, cancel := d.context()
	defer cancel()
	err := d.db.Client().Disconnect(ctx)
	log.Info("[DB] Disconnected from database")
	return err
}

// method for insert single value in a collection
func (d *mongoDatabase) InsertOne(collection string, data interface{}) (primitive.ObjectID, error) {
	ctx, cancel := d.context()
	defer cancel()
	res, err := d.db.Collection(collection).InsertOne(ctx, data)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

// method for find single value in a collection
func (d *mongoDatabase) FindOne(collection string, filter interface{}, result interface{}) error {
	ctx, cancel := d.context()
	defer cancel()
	return d.db.Collection(collection).FindOne(ctx, filter).Decode(result)
}

// method for find multiple values in a collection
func (d *mongoDatabase) FindMany(collection string, filter interface{}, result interface{}) error {
	ctx, cancel := d.context()
	defer cancel()
	cursor, err := d.db.Collection(collection).Find(ctx, filter)
	if err != nil {
		return err
	}
	return cursor.All(ctx, result)
}

// method for find multiple values in a collection with sort and limit
func (d *mongoDatabase) FindManySorted(collection string, filter interface{}, sort interface{}, limit int64, result interface{}) error {
	ctx, cancel := d.context()
	defer cancel()
	opts := options.Find().SetSort(sort).SetLimit(limit)
	cursor, err := d.db.Collection(collection).Find(ctx, filter, opts)
	if err != nil {
		return err
	}
	return cursor.All(ctx, result)
}

// method for update single value in a collection
func (d *mongoDatabase) UpdateOne(collection string, filter interface{}, update interface{}) (int64, error) {
	ctx, cancel := d.context()
	defer cancel()
	res, err := d.db.Collection(collection).UpdateOne(ctx, filter, update)
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

// method for update multiple values in a collection
func (d *mongoDatabase) UpdateMany(collection string, filter interface{}, update interface{}) (int64, error) {
	ctx, cancel := d.context()
	defer cancel()
	res, err := d.db.Collection(collection).UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

// method for upsert single value in a collection
func (d *mongoDatabase) UpsertOne(collection string, filter interface{}, update interface{}) (primitive.ObjectID, error) {
	ctx, cancel := d.context()
	defer cancel()

	opts := options.Update().SetUpsert(true)
	res, err := d.db.Collection(collection).UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.UpsertedID.(primitive.ObjectID)
	return id, nil
}

// method for counting documents in a collection
func (d *mongoDatabase) CountDocuments(collection string, filter interface{}) (int64, error) {
	ctx, cancel := d.context()
	defer cancel()
	return d.db.Collection(collection).CountDocuments(ctx, filter)
}

// InitDB creates a new database wrapper
func InitDB() {
	DB = &mongoDatabase{
		uri:      Config.MongoDB.URI,
		database: Config.MongoDB.Database,
		timeout:  time.Duration(Config.MongoDB.TimeoutMillis) * time.Millisecond,
	}

	err := DB.Connect()
	if err != nil {
		log.Fatal("[DB] Error connecting to database: ", err)
	}
	err = DB.SetupIndexes()
	if err != nil {
		log.Fatal("[DB] Error setting up indexes: ", err)
	}
	err = DB.SetupLocker()
	if err != nil {
		log.Fatal("[DB] Error setting up locker: ", err)
	}
	log.Info("[DB] Database initialized")
}
