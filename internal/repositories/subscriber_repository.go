package repositories

import (
	"context"
	"errors"
	"fmt"

	"reship/internal/models"

	"gorm.io/gorm"
)

type SubscriberRepository interface {
	// TierFor returns the customer's plan; customers without a row are on the free tier.
	TierFor(ctx context.Context, userID uint) (models.SubscriptionTier, error)
}

type subscriberRepository struct {
	db *gorm.DB
}

func NewSubscriberRepository(db *gorm.DB) SubscriberRepository {
	return &subscriberRepository{db: db}
}

func (r *subscriberRepository) TierFor(ctx context.Context, userID uint) (models.SubscriptionTier, error) {
	var sub models.Subscriber
	err := r.db.WithContext(ctx).Select("tier").Where("user_id = ?", userID).First(&sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.TierFree, nil
		}
		return "", fmt.Errorf("failed to get subscriber tier: %w", err)
	}
	return sub.Tier, nil
}
