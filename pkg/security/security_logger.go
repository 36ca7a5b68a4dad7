package security

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EventType represents the type of security event
type EventType string

const (
	EventRateLimitTriggered EventType = "rate_limit_triggered"
	EventCSRFViolation      EventType = "csrf_violation"
	EventSessionRejected    EventType = "session_rejected"
	EventSessionStarted     EventType = "session_started"
)

// SecurityEvent represents a security-related event to be logged
type SecurityEvent struct {
	Timestamp    time.Time              `json:"timestamp"`
	Service      string                 `json:"service"`
	Environment  string                 `json:"env"`
	Level        string                 `json:"level"`
	Event        EventType              `json:"event"`
	SubjectType  string                 `json:"subject_type,omitempty"`  // "ip", "session"
	SubjectValue string                 `json:"subject_value,omitempty"` // hashed for session ids
	IP           string                 `json:"ip,omitempty"`
	UserAgent    string                 `json:"user_agent,omitempty"`
	RequestID    string                 `json:"request_id,omitempty"`
	Details      map[string]interface{} `json:"details,omitempty"`
}

// SecurityLogger writes security events as structured zap entries, separate
// from the application log
type SecurityLogger struct {
	zapLogger   *zap.Logger
	serviceName string
	environment string
}

var (
	defaultLogger *SecurityLogger
)

// InitSecurityLogger initializes the default security logger with Zap
func InitSecurityLogger(serviceName, environment string) *SecurityLogger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.LevelKey = "level"
	config.EncoderConfig.MessageKey = "message"

	// Containers collect stdout
	config.OutputPaths = []string{"stdout"}
	config.ErrorOutputPaths = []string{"stderr"}

	logger, err := config.Build(zap.AddStacktrace(zapcore.ErrorLevel))
	if err != nil {
		logger, _ = zap.NewProduction()
	}

	defaultLogger = NewSecurityLogger(logger, serviceName, environment)
	return defaultLogger
}

// NewSecurityLogger wraps an existing zap logger
func NewSecurityLogger(logger *zap.Logger, serviceName, environment string) *SecurityLogger {
	return &SecurityLogger{
		zapLogger:   logger,
		serviceName: serviceName,
		environment: environment,
	}
}

// DefaultLogger returns the default security logger instance
func DefaultLogger() *SecurityLogger {
	if defaultLogger == nil {
		return InitSecurityLogger("talent-sift", Environment())
	}
	return defaultLogger
}

// Log logs a security event
func (sl *SecurityLogger) Log(event SecurityEvent) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	event.Service = sl.serviceName
	event.Environment = sl.environment

	level := zapcore.WarnLevel
	switch event.Event {
	case EventSessionStarted:
		level = zapcore.InfoLevel
	case EventRateLimitTriggered, EventSessionRejected:
		level = zapcore.WarnLevel
	case EventCSRFViolation:
		level = zapcore.ErrorLevel
	}
	event.Level = level.String()

	fields := []zap.Field{
		zap.String("service", event.Service),
		zap.String("env", event.Environment),
		zap.String("event", string(event.Event)),
	}
	if event.SubjectType != "" {
		fields = append(fields, zap.String("subject_type", event.SubjectType))
	}
	if event.SubjectValue != "" {
		fields = append(fields, zap.String("subject_value", event.SubjectValue))
	}
	if event.IP != "" {
		fields = append(fields, zap.String("ip", event.IP))
	}
	if event.UserAgent != "" {
		fields = append(fields, zap.String("user_agent", event.UserAgent))
	}
	if event.RequestID != "" {
		fields = append(fields, zap.String("request_id", event.RequestID))
	}
	if len(event.Details) > 0 {
		detailsJSON, _ := json.Marshal(event.Details)
		fields = append(fields, zap.String("details", string(detailsJSON)))
	}

	sl.zapLogger.Log(level, string(event.Event), fields...)
}

// LogRateLimitTriggered logs when rate limiting rejects a request
func (sl *SecurityLogger) LogRateLimitTriggered(ip, userAgent, requestID, endpoint, key string) {
	sl.Log(SecurityEvent{
		Event:        EventRateLimitTriggered,
		SubjectType:  "ip",
		SubjectValue: ip,
		IP:           ip,
		UserAgent:    userAgent,
		RequestID:    requestID,
		Details:      map[string]interface{}{"endpoint": endpoint, "key": key},
	})
}

// LogCSRFViolation logs a state-changing request without a matching CSRF token
func (sl *SecurityLogger) LogCSRFViolation(ip, userAgent, requestID, endpoint, reason string) {
	sl.Log(SecurityEvent{
		Event:     EventCSRFViolation,
		IP:        ip,
		UserAgent: userAgent,
		RequestID: requestID,
		Details:   map[string]interface{}{"endpoint": endpoint, "reason": reason},
	})
}

// LogSessionRejected logs a session cookie that failed verification
func (sl *SecurityLogger) LogSessionRejected(ip, userAgent, requestID, reason string) {
	sl.Log(SecurityEvent{
		Event:     EventSessionRejected,
		IP:        ip,
		UserAgent: userAgent,
		RequestID: requestID,
		Details:   map[string]interface{}{"reason": reason},
	})
}

// LogSessionStarted logs a newly issued session. The id is hashed.
func (sl *SecurityLogger) LogSessionStarted(sessionID, ip, requestID string) {
	sl.Log(SecurityEvent{
		Event:        EventSessionStarted,
		SubjectType:  "session",
		SubjectValue: HashValue(sessionID),
		IP:           ip,
		RequestID:    requestID,
	})
}

// Sync flushes any buffered log entries
func (sl *SecurityLogger) Sync() error {
	return sl.zapLogger.Sync()
}

// HashValue creates a SHA256 hash of a value (for logging without PII)
func HashValue(value string) string {
	hash := sha256.Sum256([]byte(value))
	return hex.EncodeToString(hash[:8]) // First 16 chars of hex
}

// Environment derives the deployment environment from GIN_MODE
func Environment() string {
	if os.Getenv("GIN_MODE") == "release" {
		return "production"
	}
	return "development"
}
