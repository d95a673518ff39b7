// Package live pushes storefront updates (cart badge, order status)
// to connected pages over websockets.
package live

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/hawkerhub/hawker-app/models"
)

// Event types
const (
	EventCartUpdate  = "cart_update"
	EventOrderUpdate = "order_update"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Hub tracks every connected page and which customer it belongs to
// (0 for anonymous visitors).
type Hub struct {
	clients map[*websocket.Conn]uint // conn -> customer ID
	mutex   sync.Mutex
}

var hub = Hub{
	clients: make(map[*websocket.Conn]uint),
}

// RegisterClient adds a connection for the given customer.
func RegisterClient(conn *websocket.Conn, customerID uint) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	hub.clients[conn] = customerID
}

// UnregisterClient drops a connection.
func UnregisterClient(conn *websocket.Conn) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	delete(hub.clients, conn)
	conn.Close()
}

// BroadcastCartCount sends the new cart badge count to one customer's pages.
func BroadcastCartCount(customerID uint, count int) {
	send(Message{
		Event: EventCartUpdate,
		Data:  map[string]interface{}{"customer_id": customerID, "count": count},
	}, customerID)
}

// BroadcastOrderUpdate announces an order status change to its customer.
func BroadcastOrderUpdate(order models.Order) {
	send(Message{
		Event: EventOrderUpdate,
		Data:  order,
	}, order.CustomerID)
}

// send delivers msg to every connection, or only to one customer's
// connections when customerID is non-zero.
func send(msg Message, customerID uint) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()

	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("Error marshaling message: %v", err)
		return
	}

	for conn, owner := range hub.clients {
		if customerID != 0 && owner != customerID {
			continue
		}
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			log.Printf("Error sending message to client: %v", err)
			continue
		}
	}
}
