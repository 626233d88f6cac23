package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"homely/config"
	"homely/database"
	"homely/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoBookingRepo is the MongoDB-backed booking ledger.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo returns a booking repository bound to the configured database.
func NewMongoBookingRepo() *MongoBookingRepo {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &MongoBookingRepo{coll: db.Collection("bookings")}
}

func (repo *MongoBookingRepo) ListBookingsForDate(ctx context.Context, date string) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return repo.listForDate(ctx, date)
}

// listForDate is shared with the transactional paths, which pass a session context.
func (repo *MongoBookingRepo) listForDate(ctx context.Context, date string) ([]models.Booking, error) {
	filter := bson.M{
		"date":   date,
		"status": models.BookingStatusConfirmed,
	}
	cursor, err := repo.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings for %s: %w", date, err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings for %s: %w", date, err)
	}
	return bookings, nil
}

func (repo *MongoBookingRepo) GetByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var booking models.Booking
	err := repo.coll.FindOne(ctx, bson.M{"id": bookingID}).Decode(&booking)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("%w: %s", ErrBookingNotFound, bookingID)
		}
		return nil, fmt.Errorf("failed to fetch booking %s: %w", bookingID, err)
	}
	return &booking, nil
}

// CreateBookingValidated inserts a booking only if the commit-time capacity
// check passes against the day's bookings as read inside the transaction.
// The displayed availability is advisory; this is the authoritative check.
func (repo *MongoBookingRepo) CreateBookingValidated(ctx context.Context, booking *models.Booking, validate ValidateFn) error {
	return repo.withTransaction(ctx, func(sc mongo.SessionContext) error {
		existing, err := repo.listForDate(sc, booking.Date)
		if err != nil {
			return err
		}
		if err := validate(existing); err != nil {
			return err
		}
		if _, err := repo.coll.InsertOne(sc, booking); err != nil {
			return fmt.Errorf("insert booking failed: %w", err)
		}
		return nil
	})
}

// UpdateBookingScheduleValidated moves a booking to a new date/start under
// the same transactional capacity check used for creation.
func (repo *MongoBookingRepo) UpdateBookingScheduleValidated(ctx context.Context, bookingID, date string, start int, validate ValidateFn) error {
	return repo.withTransaction(ctx, func(sc mongo.SessionContext) error {
		existing, err := repo.listForDate(sc, date)
		if err != nil {
			return err
		}
		if err := validate(existing); err != nil {
			return err
		}

		update := bson.M{"$set": bson.M{
			"date":       date,
			"start":      start,
			"updated_at": time.Now(),
		}}
		res, err := repo.coll.UpdateOne(sc, bson.M{"id": bookingID, "status": models.BookingStatusConfirmed}, update)
		if err != nil {
			return fmt.Errorf("update booking schedule failed: %w", err)
		}
		if res.MatchedCount == 0 {
			return fmt.Errorf("%w: %s", ErrBookingNotFound, bookingID)
		}
		return nil
	})
}

func (repo *MongoBookingRepo) CancelBooking(ctx context.Context, bookingID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"status":     models.BookingStatusCancelled,
		"updated_at": time.Now(),
	}}
	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": bookingID}, update)
	if err != nil {
		return fmt.Errorf("cancel booking failed: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%w: %s", ErrBookingNotFound, bookingID)
	}
	return nil
}

func (repo *MongoBookingRepo) withTransaction(ctx context.Context, txnFn func(sc mongo.SessionContext) error) error {
	client := repo.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

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
		return fmt.Errorf("booking transaction failed: %w", err)
	}
	return nil
}
