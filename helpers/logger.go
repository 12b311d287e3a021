package helpers

import (
	"fmt"
	"io"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"gitlab.com/aoterocom/AOStrategyPreview/config"
	tb "gopkg.in/tucnak/telebot.v2"
)

type FileLogger struct {
	logger         *log.Logger
	file           *os.File
	telegramOutput bool
	telegramToken  string
	telegramChatId string
}

var Logger = NewFileLogger(os.Stderr)

func NewFileLogger(out io.Writer) *FileLogger {
	plainFormatter := new(PlainFormatter)
	plainFormatter.TimestampFormat = "2006-01-02 15:04:05"
	plainFormatter.LevelDesc = []string{"PANIC", "FATAL", "ERROR", "WARN", "INFO ", "DEBUG", "TRACE"}

	logger := log.New()
	logger.SetOutput(out)
	logger.SetFormatter(plainFormatter)
	logger.SetLevel(log.InfoLevel)
	return &FileLogger{logger: logger}
}

// ConfigureLogger points the shared logger at the configured file and level
func ConfigureLogger(cfg config.Config) error {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(cfg.LogFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("error opening file: %w", err)
	}

	if err := Logger.Close(); err != nil {
		f.Close()
		return err
	}
	Logger.file = f
	Logger.logger.SetOutput(io.MultiWriter(os.Stderr, f))
	Logger.logger.SetLevel(level)
	Logger.telegramOutput = cfg.TelegramOutput
	Logger.telegramToken = cfg.TelegramToken
	Logger.telegramChatId = cfg.TelegramChatId
	return nil
}

// Close releases the log file opened by ConfigureLogger and falls back to stderr
func (l *FileLogger) Close() error {
	if l.file == nil {
		return nil
	}
	f := l.file
	l.file = nil
	l.logger.SetOutput(os.Stderr)
	if err := f.Close(); err != nil {
		return fmt.Errorf("error closing log file: %w", err)
	}
	return nil
}

func (l *FileLogger) SetOutput(out io.Writer) {
	l.logger.SetOutput(out)
}

func (l *FileLogger) SetLevel(level log.Level) {
	l.logger.SetLevel(level)
}

func (l *FileLogger) Errorln(args ...interface{}) {
	l.logger.Errorln(args...)
}

func (l *FileLogger) Fatalln(args ...interface{}) {
	l.logger.Fatalln(args...)
}

func (l *FileLogger) Warnln(args ...interface{}) {
	l.logger.Warnln(args...)
}

func (l *FileLogger) Infoln(args ...interface{}) {
	l.logger.Infoln(args...)
	if l.telegramOutput && len(args) > 0 {
		err := sendOnTelegramChannel(fmt.Sprintf("%s", args[0]), l.telegramToken, l.telegramChatId)
		if err != nil {
			l.logger.Errorln("telegram: " + err.Error())
		}
	}
}

func (l *FileLogger) Debugln(args ...interface{}) {
	l.logger.Debugln(args...)
}

func (l *FileLogger) Traceln(args ...interface{}) {
	l.logger.Traceln(args...)
}

type PlainFormatter struct {
	TimestampFormat string
	LevelDesc       []string
}

func (f PlainFormatter) Format(entry *log.Entry) ([]byte, error) {
	timestamp := entry.Time.Format(f.TimestampFormat)
	return []byte(fmt.Sprintf("%s %s %s\n", f.LevelDesc[entry.Level], timestamp, entry.Message)), nil
}

func sendOnTelegramChannel(message string, token string, chatID string) error {
	b, err := tb.NewBot(tb.Settings{
		Token:  token,
		Poller: &tb.LongPoller{Timeout: 10 * time.Second},
	})
	if err != nil {
		return err
	}

	chat, err := b.ChatByID(chatID)
	if err != nil {
		return err
	}
	_, err = b.Send(chat, message)
	return err
}
