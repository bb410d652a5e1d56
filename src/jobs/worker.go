package jobs

import (
	"context"
	"encoding/json"
	"log"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Atuba426/Airtable-assignment/src/database"
	"github.com/Atuba426/Airtable-assignment/src/services/submission"
)

// HandleWritebackTask retries the Airtable write for one submission.
func HandleWritebackTask(ctx context.Context, t *asynq.Task) error {
	var payload submission.WritebackPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		log.Println("[jobs] writeback payload decode error:", err)
		return err
	}

	id, err := primitive.ObjectIDFromHex(payload.SubmissionID)
	if err != nil {
		log.Println("[jobs] invalid submission id in payload:", payload.SubmissionID)
		return nil
	}

	return submission.CompleteWriteback(ctx, id)
}

// StartWorker runs the Asynq worker in the background. No-op when Redis
// is not configured.
func StartWorker() {
	if database.RedisURI == "" {
		log.Println("[jobs] Redis not available, worker not started")
		return
	}

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: database.RedisURI},
		asynq.Config{Concurrency: 5},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(submission.TaskTypeWriteback, HandleWritebackTask)

	go func() {
		if err := srv.Run(mux); err != nil {
			log.Fatal("[jobs] worker stopped:", err)
		}
	}()
}
