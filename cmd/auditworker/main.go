package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"html/template"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/wneessen/go-mail"

	"github.com/oakmont-ms/library-volunteers/backend/internal/config"
	"github.com/oakmont-ms/library-volunteers/backend/internal/domain"
	"github.com/oakmont-ms/library-volunteers/backend/internal/repository"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("failed to load configuration", slog.String("error", err.Error()))
		return
	}

	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("failed to create database pool", slog.String("error", err.Error()))
		return
	}
	defer dbpool.Close()

	pingCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()
	if err := dbpool.PingContext(pingCtx); err != nil {
		logger.Error("failed to connect to database", slog.String("error", err.Error()))
		return
	}

	repo := repository.NewRepository(cfg, dbpool)

	client, err := mail.NewClient(cfg.Email.SMTP.Host,
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithSSL(),
		mail.WithPort(cfg.Email.SMTP.Port),
		mail.WithUsername(cfg.Email.SMTP.Username),
		mail.WithPassword(cfg.Email.SMTP.Password),
	)
	if err != nil {
		logger.Error("failed to create mail client", slog.String("error", err.Error()))
		return
	}
	defer client.Close()

	dialCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Email.SMTP.DialTimeout)*time.Second)
	defer cancel()
	if err := client.DialWithContext(dialCtx); err != nil {
		logger.Error("failed to connect to mail server", slog.String("error", err.Error()))
		return
	}

	conn, err := amqp.Dial(cfg.RabbitMQ.DSN)
	if err != nil {
		logger.Error("failed to connect to rabbitmq", slog.String("error", err.Error()))
		return
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		logger.Error("failed to open channel", slog.String("error", err.Error()))
		return
	}
	defer ch.Close()

	for _, queue := range []string{"audit_queue", "email_queue"} {
		if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
			logger.Error("failed to declare queue", "queue", queue, slog.String("error", err.Error()))
			return
		}
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	auditMsgs, err := ch.Consume("audit_queue", "", false, false, false, false, nil)
	if err != nil {
		logger.Error("failed to consume audit queue", slog.String("error", err.Error()))
		os.Exit(1)
	}

	mailMsgs, err := ch.Consume("email_queue", "", false, false, false, false, nil)
	if err != nil {
		logger.Error("failed to consume email queue", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	wg := sync.WaitGroup{}

	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case msg := <-auditMsgs:
				handleAuditMessage(repo, msg)
			}
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case msg := <-mailMsgs:
				handleMailMessage(cfg, client, msg)
			}
		}
	}()

	logger.Info("waiting for messages... (press CTRL+C to exit)")
	<-sigChan

	slog.Info("shutting down audit worker...")
	cancel()
	wg.Wait()
	slog.Info("audit worker stopped")
}

func handleAuditMessage(repo *repository.Repository, msg amqp.Delivery) {
	slog.Info("audit event received", slog.String("message", string(msg.Body)))

	event := domain.AuditEvent{}
	if err := json.Unmarshal(msg.Body, &event); err != nil {
		slog.Error("failed to decode audit event", slog.String("error", err.Error()))
		_ = msg.Nack(false, false)
		return
	}

	if err := repo.CreateAuditLog(&event); err != nil {
		slog.Error("failed to persist audit event", slog.String("error", err.Error()))
		_ = msg.Nack(false, true) // requeue, storage may be transiently down
		return
	}

	_ = msg.Ack(false)
}

func handleMailMessage(cfg *config.Config, client *mail.Client, msg amqp.Delivery) {
	slog.Info("mail message received", slog.String("message", string(msg.Body)))

	mailMessage := domain.MailMessage{}
	if err := json.Unmarshal(msg.Body, &mailMessage); err != nil {
		slog.Error("failed to decode mail message", slog.String("error", err.Error()))
		_ = msg.Nack(false, false)
		return
	}

	m := mail.NewMsg()
	if err := m.From(cfg.Email.SMTP.Username); err != nil {
		slog.Error("failed to set mail sender", slog.String("error", err.Error()))
		_ = msg.Nack(false, false)
		return
	}
	if err := m.To(mailMessage.To); err != nil {
		slog.Error("failed to set mail recipient", slog.String("error", err.Error()))
		_ = msg.Nack(false, false)
		return
	}

	switch mailMessage.Type {
	case "new_account":
		tmpl, err := template.ParseFiles("./templates/new_account_email.html")
		if err != nil {
			slog.Error("failed to parse mail template", slog.String("error", err.Error()))
			_ = msg.Nack(false, false)
			return
		}
		if err := m.SetBodyHTMLTemplate(tmpl, mailMessage.Data); err != nil {
			slog.Error("failed to set mail body", slog.String("error", err.Error()))
			_ = msg.Nack(false, false)
			return
		}
		m.Subject("Library Volunteer Desk - Your Account")
	case "hours_added":
		tmpl, err := template.ParseFiles("./templates/hours_added_email.html")
		if err != nil {
			slog.Error("failed to parse mail template", slog.String("error", err.Error()))
			_ = msg.Nack(false, false)
			return
		}
		if err := m.SetBodyHTMLTemplate(tmpl, mailMessage.Data); err != nil {
			slog.Error("failed to set mail body", slog.String("error", err.Error()))
			_ = msg.Nack(false, false)
			return
		}
		m.Subject("Library Volunteer Desk - Hours Recorded")
	default:
		slog.Error("unsupported mail type", slog.String("type", mailMessage.Type))
		_ = msg.Nack(false, false)
		return
	}

	if err := client.DialAndSend(m); err != nil {
		slog.Error("failed to send mail", slog.String("error", err.Error()))
		_ = msg.Nack(false, true) // requeue for retry
		return
	}

	_ = msg.Ack(false)
}
