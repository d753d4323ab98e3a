package paymentRepo

import (
	"context"
	"fmt"
	"time"

	"parlorspace/models"
	"parlorspace/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoLedgerRepo implements LedgerRepository using MongoDB.
type MongoLedgerRepo struct {
	paymentColl *mongo.Collection
	bookingColl *mongo.Collection
}

// NewMongoLedgerRepo creates a new instance of LedgerRepository using MongoDB.
func NewMongoLedgerRepo(db *mongo.Database) LedgerRepository {
	repo := &MongoLedgerRepo{
		paymentColl: db.Collection("payments"),
		bookingColl: db.Collection("bookings"),
	}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Sugar().Warnf("failed to create payment indexes: %v", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates the unique transactionId index that enforces the
// one-record-per-transaction invariant at the store level.
func (r *MongoLedgerRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "transactionId", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "customerEmail", Value: 1}}},
	}

	_, err := r.paymentColl.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByTransactionID retrieves a ledger record by the external transaction id.
func (r *MongoLedgerRepo) GetByTransactionID(transactionID string) (*models.Payment, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var payment models.Payment
	if err := r.paymentColl.FindOne(ctx, bson.M{"transactionId": transactionID}).Decode(&payment); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch payment with transaction id %s: %w", transactionID, err)
	}
	return &payment, nil
}

// ListByEmail retrieves a customer's ledger records, sorted by paidAt
// descending.
func (r *MongoLedgerRepo) ListByEmail(email string) ([]models.Payment, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{}
	if email != "" {
		filter["customerEmail"] = email
	}

	opts := options.Find().SetSort(bson.D{{Key: "paidAt", Value: -1}})
	cursor, err := r.paymentColl.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve payments: %w", err)
	}
	defer cursor.Close(ctx)

	var payments []models.Payment
	for cursor.Next(ctx) {
		var p models.Payment
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("failed to decode payment: %w", err)
		}
		payments = append(payments, p)
	}
	return payments, nil
}

// SettleTransactionally updates the referenced booking and inserts the
// ledger record inside one Mongo transaction, so a payment record exists
// if and only if its booking was updated.
func (r *MongoLedgerRepo) SettleTransactionally(
	ctx context.Context,
	bookingID string,
	bookingFields map[string]any,
	payment *models.Payment,
) (int64, int64, error) {
	client := r.paymentColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return 0, 0, fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	var matched, modified int64

	txnFn := func(sc mongo.SessionContext) error {
		res, err := r.bookingColl.UpdateOne(sc, bson.M{"id": bookingID}, bson.M{"$set": bookingFields})
		if err != nil {
			return fmt.Errorf("booking update failed: %w", err)
		}
		if res.MatchedCount == 0 {
			return utils.NewNotFoundError(fmt.Sprintf("booking with id %s not found", bookingID))
		}
		matched, modified = res.MatchedCount, res.ModifiedCount

		if _, err := r.paymentColl.InsertOne(sc, payment); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return utils.NewConflictError(fmt.Sprintf("payment with transaction id %s already recorded", payment.TransactionID))
			}
			return fmt.Errorf("insert payment failed: %w", err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		return 0, 0, err
	}

	return matched, modified, nil
}
