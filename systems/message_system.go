package systems

import (
	"fmt"
	"strings"
)

// MessageLog stores game messages
type MessageLog struct {
	Messages    []string
	MaxMessages int
}

// Global message log instance (singleton)
var globalMessageLog *MessageLog

// GetMessageLog returns the global message log instance
func GetMessageLog() *MessageLog {
	if globalMessageLog == nil {
		globalMessageLog = NewMessageLog()
	}
	return globalMessageLog
}

// NewMessageLog creates a new message log
func NewMessageLog() *MessageLog {
	return &MessageLog{
		MaxMessages: 100,
	}
}

// Add appends a message, dropping the oldest past MaxMessages
func (ml *MessageLog) Add(message string) {
	ml.Messages = append(ml.Messages, message)
	if len(ml.Messages) > ml.MaxMessages {
		ml.Messages = ml.Messages[len(ml.Messages)-ml.MaxMessages:]
	}
}

// Addf formats and adds a message
func (ml *MessageLog) Addf(format string, args ...any) {
	ml.Add(fmt.Sprintf(format, args...))
}

// Warn adds a message flagged as a warning
func (ml *MessageLog) Warn(message string) {
	ml.Add("WARNING: " + message)
}

// RecentMessages gets the n most recent messages, newest first
func (ml *MessageLog) RecentMessages(n int) []string {
	n = min(n, len(ml.Messages))
	result := make([]string, n)
	for i := 0; i < n; i++ {
		result[i] = ml.Messages[len(ml.Messages)-1-i]
	}
	return result
}

// IsWarning reports whether a logged message was added through Warn or
// reports an error
func IsWarning(message string) bool {
	return strings.HasPrefix(message, "WARNING") || strings.HasPrefix(message, "ERROR")
}

// Clear clears all messages
func (ml *MessageLog) Clear() {
	ml.Messages = nil
}
