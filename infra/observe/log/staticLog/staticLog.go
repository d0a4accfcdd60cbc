// Package staticLog 进程级日志，logrus + lumberjack 滚动文件
package staticLog

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var Log = newLogger(os.Stderr)

type Options struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"` // 为空时输出到 stderr
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

func newLogger(w io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return l
}

// Init 按配置重设级别与输出，未知级别返回错误且不改动当前设置
func Init(opts Options) error {
	level := logrus.InfoLevel
	if s := strings.TrimSpace(opts.Level); s != "" {
		lv, err := logrus.ParseLevel(s)
		if err != nil {
			return err
		}
		level = lv
	}
	Log.SetLevel(level)

	if opts.File == "" {
		Log.SetOutput(os.Stderr)
		return nil
	}
	Log.SetOutput(&lumberjack.Logger{
		Filename:   opts.File,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAgeDays,
	})
	return nil
}
