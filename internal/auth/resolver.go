package auth

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"staffbot/internal/models"
	"staffbot/pkg/logger"
)

// EmployeeDirectory looks up employee records by their stored chat identity.
// The tracker-backed employee manager implements it; tests inject a fake.
type EmployeeDirectory interface {
	SearchByTelegram(ctx context.Context, telegramID string) ([]models.Employee, error)
}

// Resolver maps a Telegram identity to a role. A configured admin identity
// wins unconditionally; otherwise the role comes from the caller's employee
// record. No record, or any lookup failure, degrades to the lowest-privilege
// staff role so the caller still gets a usable menu. That fail-open default
// trades security for availability; the admin override is the only identity
// that cannot be downgraded by a tracker outage.
type Resolver struct {
	adminTelegramID int64
	directory       EmployeeDirectory
	log             *zap.Logger
}

func NewResolver(adminTelegramID int64, directory EmployeeDirectory, log *zap.Logger) *Resolver {
	return &Resolver{
		adminTelegramID: adminTelegramID,
		directory:       directory,
		log:             log,
	}
}

func (r *Resolver) Resolve(ctx context.Context, telegramID int64) models.Role {
	if r.adminTelegramID != 0 && telegramID == r.adminTelegramID {
		return models.RoleAdmin
	}

	employees, err := r.directory.SearchByTelegram(ctx, strconv.FormatInt(telegramID, 10))
	if err != nil {
		r.log.Warn("employee lookup failed, defaulting role",
			zap.Int64(logger.FieldChatID, telegramID),
			zap.Error(err))
		return models.RoleEmployee
	}
	if len(employees) == 0 || employees[0].Role == "" {
		return models.RoleEmployee
	}
	return employees[0].Role
}

// HasPermission reports whether userRole is ranked at least as high as
// requiredRole. Unknown roles rank 0, so they are never sufficient and a
// requirement spelled with an unknown role is always met.
func HasPermission(userRole, requiredRole models.Role) bool {
	return userRole.Rank() >= requiredRole.Rank()
}
