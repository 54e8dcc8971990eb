package mq

import (
	"context"
	"encoding/json"
	"log"

	"bazario/models"
	"bazario/rdx"
)

const indexChannel = "indexing-events"

// Emit publishes an indexing event to Redis; consumers fold it into the
// search index asynchronously.
func Emit(ctx context.Context, eventName string, content models.Index) {
	data, err := json.Marshal(content)
	if err != nil {
		log.Printf("[Emit] Failed to marshal event content: %v", err)
		return
	}

	if err := rdx.Conn.Publish(context.Background(), indexChannel, data).Err(); err != nil {
		log.Printf("[Emit] Failed to publish %s event: %v", eventName, err)
	}
}

// StartIndexingWorker consumes indexing events and maintains a per-entity-type
// index hash in Redis (entity id -> raw event) for the search endpoints.
func StartIndexingWorker() {
	ctx := context.Background()
	sub := rdx.Conn.Subscribe(ctx, indexChannel)
	ch := sub.Channel()

	log.Println("[IndexingWorker] Listening for indexing events...")

	for msg := range ch {
		var event models.Index
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			log.Printf("[IndexingWorker] Failed to parse event: %v", err)
			continue
		}

		key := "index:" + event.EntityType
		switch event.Method {
		case "DELETE":
			if _, err := rdx.RdxHdel(key, event.EntityId); err != nil {
				log.Printf("[IndexingWorker] HDel error: %v", err)
			}
		default:
			if err := rdx.RdxHset(key, event.EntityId, msg.Payload); err != nil {
				log.Printf("[IndexingWorker] HSet error: %v", err)
			}
		}
	}
}
