package client

import "log"

// Notifier, işlem sonuçlarını kullanıcıya duyuran arayüz.
// UI katmanı toast/snackbar'a bağlar; CLI kullanımı için log yeterli.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// noopNotifier, hiçbir şey yapmaz — varsayılan.
type noopNotifier struct{}

func (noopNotifier) Success(string) {}
func (noopNotifier) Error(string)   {}

// logNotifier, bildirimleri standart log'a yazar.
type logNotifier struct{}

// NewLogNotifier, log tabanlı notifier döner.
func NewLogNotifier() Notifier {
	return logNotifier{}
}

func (logNotifier) Success(message string) {
	log.Printf("[notify] %s", message)
}

func (logNotifier) Error(message string) {
	log.Printf("[notify] error: %s", message)
}
