package services

import (
	"encoding/json"
	"log"
	"time"

	"github.com/handmadefactory/backend/internal/domain"
	"github.com/handmadefactory/backend/internal/interfaces"
	"github.com/handmadefactory/backend/internal/repository"
)

const auditIPMaxLen = 64

type AuditService interface {
	// Record persists one audit row. Best-effort: a failed insert is logged
	// and never fails the request that triggered it.
	Record(method, path string, statusCode int, userID *uint, ip string)
}

type auditService struct {
	repo     repository.AuditRepository
	producer interfaces.ProducerHandler
}

func NewAuditService(repo repository.AuditRepository, producer interfaces.ProducerHandler) AuditService {
	return &auditService{
		repo:     repo,
		producer: producer,
	}
}

type auditEvent struct {
	Ts         time.Time `json:"ts"`
	UserID     *uint     `json:"user_id,omitempty"`
	Method     string    `json:"method"`
	Path       string    `json:"path"`
	StatusCode int       `json:"status_code"`
	IP         *string   `json:"ip,omitempty"`
}

func (s *auditService) Record(method, path string, statusCode int, userID *uint, ip string) {
	entry := &domain.AuditLog{
		UserID:     userID,
		Method:     method,
		Path:       path,
		StatusCode: statusCode,
		IP:         truncateIP(ip),
	}

	if err := s.repo.Create(entry); err != nil {
		log.Printf("audit write failed for %s %s: %v", method, path, err)
		return
	}

	s.publish(entry)
}

// publish mirrors the entry to the broker when one is configured. Like the
// write itself this is fire-and-forget.
func (s *auditService) publish(entry *domain.AuditLog) {
	if s.producer == nil {
		return
	}

	value, err := json.Marshal(auditEvent{
		Ts:         entry.Ts,
		UserID:     entry.UserID,
		Method:     entry.Method,
		Path:       entry.Path,
		StatusCode: entry.StatusCode,
		IP:         entry.IP,
	})
	if err != nil {
		log.Printf("audit event marshal failed: %v", err)
		return
	}

	if err := s.producer.PublishMessage([]byte(entry.Path), value); err != nil {
		log.Printf("audit event publish failed: %v", err)
	}
}

func truncateIP(ip string) *string {
	if ip == "" {
		return nil
	}
	if len(ip) > auditIPMaxLen {
		ip = ip[:auditIPMaxLen]
	}
	return &ip
}
