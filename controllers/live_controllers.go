package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/hawkerhub/hawker-app/live"
	"github.com/hawkerhub/hawker-app/middlewares"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// LiveHandler upgrades the connection and registers it with the hub.
// Authenticated visitors get their own cart and order events; anonymous
// connections sit idle until the visitor signs in and reconnects.
func LiveHandler(c *gin.Context) {
	customerID, _ := middlewares.CustomerID(c)

	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	live.RegisterClient(ws, customerID)

	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			break
		}
	}

	live.UnregisterClient(ws)
}
