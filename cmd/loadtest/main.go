// Load-test client: connects N websocket sessions to one room and
// plays badly on purpose — typing updates, random guesses, occasional
// resets — while printing everything the server pushes back.
//
// Usage: go run ./cmd/loadtest <number_of_clients> [roomId]
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/gorilla/websocket"
)

const wsURL = "ws://localhost:3000/ws"

type wsMessage struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

var sampleGuesses = []string{"crane", "slate", "audio", "stone", "query", "llama", "allot", "zzzzz", "cat"}

func main() {
	args := os.Args
	if len(args) < 2 {
		log.Fatal("Usage: go run ./cmd/loadtest <number_of_clients> [roomId]")
	}

	numClients, err := strconv.Atoi(args[1])
	if err != nil {
		log.Fatal("Invalid number of clients:", err)
	}

	roomID := "loadtest"
	if len(args) >= 3 {
		roomID = args[2]
	}
	fmt.Println("Joining room:", roomID)

	for i := 0; i < numClients; i++ {
		go connectAndSpam(roomID, fmt.Sprintf("client%d", i))
	}

	select {} // block forever (let goroutines run)
}

func connectAndSpam(roomID, name string) {
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		log.Println("WS connect error:", err)
		return
	}
	defer conn.Close()

	// Print server pushes in the background.
	go func() {
		for {
			_, msg, err := conn.ReadMessage()
			if err != nil {
				return
			}
			fmt.Printf("%s <- %s\n", name, msg)
		}
	}()

	send(conn, name, "room_join", fmt.Sprintf(`{"roomId":%q}`, roomID))

	for i := 0; i < 100; i++ {
		switch rand.Intn(10) {
		case 0:
			send(conn, name, "reset_room", `{}`)
		case 1, 2, 3:
			send(conn, name, "typing", fmt.Sprintf(`{"length":%d}`, rand.Intn(6)))
		default:
			guess := sampleGuesses[rand.Intn(len(sampleGuesses))]
			send(conn, name, "guess", fmt.Sprintf(`{"guess":%q}`, guess))
		}
		time.Sleep(time.Duration(100+rand.Intn(900)) * time.Millisecond)
	}

	fmt.Printf("%s finished sending messages\n", name)
}

func send(conn *websocket.Conn, name, typ, data string) {
	msg := wsMessage{Type: typ, Data: json.RawMessage(data)}
	msgBytes, err := json.Marshal(msg)
	if err != nil {
		log.Printf("JSON marshal error for %s: %v", name, err)
		return
	}
	if err := conn.WriteMessage(websocket.TextMessage, msgBytes); err != nil {
		log.Printf("Write error for %s: %v", name, err)
	}
}
