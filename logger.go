package main

import (
	"io"

	"github.com/sirupsen/logrus"
)

// newLogger 日志只写 stderr，stdout 留给统计结果
func newLogger(out io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	return log
}

// configureLogger applies a validated LogCfg.
func configureLogger(log *logrus.Logger, cfg LogCfg) error {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return err
	}
	log.SetLevel(level)
	if cfg.Format == formatJSON {
		log.SetFormatter(&logrus.JSONFormatter{})
	}
	return nil
}
