package services

import (
	"context"
	"fmt"

	"github.com/alimgiray/showcase/internal/repositories"
	"github.com/alimgiray/showcase/pkg/logger"
	"github.com/sirupsen/logrus"
)

// MembershipService links pending contributors to accounts created after the project
type MembershipService struct {
	pendingRepo *repositories.PendingUserRepository
}

func NewMembershipService(pendingRepo *repositories.PendingUserRepository) *MembershipService {
	return &MembershipService{
		pendingRepo: pendingRepo,
	}
}

// PromotePendingUsers converts up to batch claimed pending users into project
// users and returns how many were promoted.
func (s *MembershipService) PromotePendingUsers(ctx context.Context, batch int) (int, error) {
	claimed, err := s.pendingRepo.FindClaimed(ctx, batch)
	if err != nil {
		return 0, fmt.Errorf("failed to find claimed pending users: %w", err)
	}

	promoted := 0
	for i := range claimed {
		pending := &claimed[i]
		if err := s.pendingRepo.Promote(ctx, &pending.PendingUser, pending.UserID); err != nil {
			return promoted, fmt.Errorf("failed to promote pending user %s: %w", pending.ID, err)
		}
		logger.WithFields(logrus.Fields{
			"project_id": pending.ProjectID,
			"username":   pending.GithubUsername,
		}).Info("Pending user promoted")
		promoted++
	}
	return promoted, nil
}
