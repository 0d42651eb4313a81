package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"boardroom/config"
	"boardroom/models"
	"boardroom/services/backup"
	"boardroom/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const (
	TypeBookingReminder = "booking:reminder"
	TypeBackupRun       = "backup:run"

	// reminderLead is how long before the meeting starts the reminder fires.
	reminderLead = 15 * time.Minute
)

// ReminderPayload is the task body for a booking reminder.
type ReminderPayload struct {
	BookingID string `json:"bookingId"`
	RoomID    string `json:"roomId"`
	UserID    string `json:"userId"`
	Purpose   string `json:"purpose"`
	Date      string `json:"date"`
	Start     int    `json:"start"`
}

// Worker owns the asynq server, scheduler and client. Constructed in main and
// shut down with the rest of the process.
type Worker struct {
	srv       *asynq.Server
	scheduler *asynq.Scheduler
	client    *asynq.Client
	backupSvc *backup.Service
}

// NewWorker wires the background queue against the configured Redis DB.
func NewWorker(backupSvc *backup.Service) *Worker {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	scheduler := asynq.NewScheduler(redisOpts, &asynq.SchedulerOpts{Location: utils.Location()})

	return &Worker{
		srv:       srv,
		scheduler: scheduler,
		client:    asynq.NewClient(redisOpts),
		backupSvc: backupSvc,
	}
}

// Start runs the worker and scheduler in the background.
func (w *Worker) Start() error {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeBookingReminder, handleReminderTask)
	mux.HandleFunc(TypeBackupRun, w.handleBackupTask)

	// Nightly backup per the configured cron expression.
	if _, err := w.scheduler.Register(config.AppConfig.BackupSchedule, asynq.NewTask(TypeBackupRun, nil)); err != nil {
		return fmt.Errorf("failed to register backup schedule: %w", err)
	}

	go func() {
		log.Println("[Worker] starting async worker...")
		if err := w.srv.Run(mux); err != nil {
			log.Fatalf("[Worker] worker stopped: %v", err)
		}
	}()
	go func() {
		if err := w.scheduler.Run(); err != nil {
			log.Fatalf("[Worker] scheduler stopped: %v", err)
		}
	}()
	return nil
}

// Shutdown stops the worker, scheduler and client.
func (w *Worker) Shutdown() {
	w.scheduler.Shutdown()
	w.srv.Shutdown()
	_ = w.client.Close()
}

// reminderFireAt returns the instant the reminder for a booking should fire.
func reminderFireAt(b models.Booking) (time.Time, error) {
	start, err := utils.CombineDateMinute(b.Date, b.Start)
	if err != nil {
		return time.Time{}, err
	}
	return start.Add(-reminderLead), nil
}

// EnqueueBookingReminder schedules a reminder task to fire shortly before the
// booking starts. Bookings starting too soon get no reminder.
func (w *Worker) EnqueueBookingReminder(b models.Booking) error {
	fireAt, err := reminderFireAt(b)
	if err != nil {
		return err
	}
	if !fireAt.After(time.Now()) {
		return nil
	}

	payload, err := json.Marshal(ReminderPayload{
		BookingID: b.ID,
		RoomID:    b.RoomID,
		UserID:    b.UserID,
		Purpose:   b.Purpose,
		Date:      b.Date,
		Start:     b.Start,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal reminder payload: %w", err)
	}

	task := asynq.NewTask(TypeBookingReminder, payload)
	if _, err := w.client.Enqueue(task, asynq.ProcessAt(fireAt)); err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	return nil
}

func handleReminderTask(ctx context.Context, task *asynq.Task) error {
	var p ReminderPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		return fmt.Errorf("invalid reminder payload: %w", err)
	}

	// Reminders are surfaced through the structured log stream.
	utils.GetLogger().Info("booking reminder due",
		zap.String("bookingID", p.BookingID),
		zap.String("roomID", p.RoomID),
		zap.String("userID", p.UserID),
		zap.String("purpose", p.Purpose),
		zap.String("date", p.Date),
		zap.String("start", utils.MinuteToClock(p.Start)))
	return nil
}

func (w *Worker) handleBackupTask(ctx context.Context, _ *asynq.Task) error {
	_, err := w.backupSvc.Run(ctx)
	return err
}
