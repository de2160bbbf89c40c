package realtime

import (
	"log"
	"sync"

	"workshophub/metrics"
)

// Conn is the write side of a subscriber connection. *websocket.Conn satisfies it.
type Conn interface {
	WriteJSON(v interface{}) error
	Close() error
}

// Notification tells subscribers that a watched table changed and they should
// re-fetch. It carries no before/after diff.
type Notification struct {
	WorkshopID string `json:"workshop_id"`
	Table      string `json:"table"`
	Action     string `json:"action"` // "insert", "update" or "delete"
}

// Subscription is the handle returned by Subscribe. Close releases it; closing
// twice is safe.
type Subscription struct {
	workshopID string
	conn       Conn
	once       sync.Once
}

var (
	workshopClients = make(map[string]map[*Subscription]bool) // Map of workshop ID to subscriptions
	broadcast       = make(chan Notification)                 // Broadcast channel for notifications
	mutex           sync.Mutex                                // Mutex to protect workshopClients map
)

// Subscribe registers a connection for change notifications scoped to a workshop
func Subscribe(workshopID string, conn Conn) *Subscription {
	sub := &Subscription{workshopID: workshopID, conn: conn}
	mutex.Lock()
	if workshopClients[workshopID] == nil {
		workshopClients[workshopID] = make(map[*Subscription]bool)
	}
	workshopClients[workshopID][sub] = true
	mutex.Unlock()
	metrics.RealtimeClients.Inc()
	return sub
}

// Close removes the subscription and closes the underlying connection
func (s *Subscription) Close() {
	s.once.Do(func() {
		mutex.Lock()
		if subs, exists := workshopClients[s.workshopID]; exists {
			delete(subs, s)
			if len(subs) == 0 {
				delete(workshopClients, s.workshopID)
			}
		}
		mutex.Unlock()
		s.conn.Close()
		metrics.RealtimeClients.Dec()
	})
}

// Notify broadcasts a change notification to all subscribers of a workshop
func Notify(workshopID string, table string, action string) {
	broadcast <- Notification{WorkshopID: workshopID, Table: table, Action: action}
}

func handleBroadcast() {
	for {
		notification := <-broadcast
		metrics.RealtimeNotifications.WithLabelValues(notification.Table).Inc()
		mutex.Lock()
		if subs, exists := workshopClients[notification.WorkshopID]; exists {
			for sub := range subs {
				if err := sub.conn.WriteJSON(notification); err != nil {
					log.Printf("WebSocket write error: %v", err)
					delete(subs, sub)
					go sub.Close()
				}
			}
		}
		mutex.Unlock()
	}
}

func init() {
	go handleBroadcast()
}
