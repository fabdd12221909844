// Copyright Amazon.com Inc. or its affiliates. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"). You may
// not use this file except in compliance with the License. A copy of the
// License is located at
//
//	http://aws.amazon.com/apache2.0/
//
// or in the "license" file accompanying this file. This file is distributed
// on an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either
// express or implied. See the License for the specific language governing
// permissions and limitations under the License.

package logger

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cihub/seelog"
)

//go:generate mockgen -destination=mocks/custom_receiver_mocks.go -copyright_file=../scripts/copyright_file github.com/cihub/seelog CustomReceiver

const (
	LOGLEVEL_ENV_VAR             = "S3API_LOGLEVEL"
	LOGFILE_ENV_VAR              = "S3API_LOGFILE"
	LOG_OUTPUT_FORMAT_ENV_VAR    = "S3API_LOG_OUTPUT_FORMAT"
	LOG_MAX_ROLL_COUNT_ENV_VAR   = "S3API_LOG_MAX_ROLL_COUNT"
	LOG_TIMESTAMP_FORMAT_ENV_VAR = "S3API_LOG_TIMESTAMP_FORMAT"

	logFmt  = "logfmt"
	jsonFmt = "json"

	DEFAULT_LOGLEVEL              = "info"
	DEFAULT_OUTPUT_FORMAT         = logFmt
	DEFAULT_MAX_ROLL_COUNT    int = 24
	DEFAULT_TIMESTAMP_FORMAT      = time.RFC3339
)

type logConfig struct {
	MaxRollCount    int
	logfile         string
	level           string
	outputFormat    string
	timestampFormat string
	lock            sync.Mutex
	// timestampLock guards timestampFormat. The formatters read it while
	// lock may already be held by SetLevel.
	timestampLock sync.RWMutex
}

var Config *logConfig

func logfmtFormatter(params string) seelog.FormatterFunc {
	return func(message string, level seelog.LogLevel, context seelog.LogContextInterface) interface{} {
		buf := bufferPool.Get()
		defer bufferPool.Put(buf)
		buf.WriteString("level=")
		buf.WriteString(level.String())
		buf.WriteByte(' ')
		buf.WriteString("time=")
		buf.WriteString(context.CallTime().UTC().Format(timestampFormat()))
		buf.WriteByte(' ')
		if strings.HasPrefix(message, structuredTxtFormatPrefix) {
			message = strings.TrimPrefix(message, structuredTxtFormatPrefix)
			buf.WriteString(message)
		} else {
			buf.WriteString("msg=")
			buf.WriteString(fmt.Sprintf("%q", message))
			buf.WriteByte(' ')
			buf.WriteString("module=")
			buf.WriteString(context.FileName())
		}
		buf.WriteByte('\n')
		return buf.String()
	}
}

func jsonFormatter(params string) seelog.FormatterFunc {
	return func(message string, level seelog.LogLevel, context seelog.LogContextInterface) interface{} {
		buf := bufferPool.Get()
		defer bufferPool.Put(buf)
		buf.WriteString(`{"level":"`)
		buf.WriteString(level.String())
		buf.WriteString(`","time":"`)
		buf.WriteString(context.CallTime().UTC().Format(timestampFormat()))
		buf.WriteString(`",`)
		if strings.HasPrefix(message, structuredJsonFormatPrefix) {
			message = strings.TrimPrefix(message, structuredJsonFormatPrefix)
			message = strings.TrimRight(message, ",")
			buf.WriteString(message)
			buf.WriteByte('}')
		} else {
			buf.WriteString(`"msg":`)
			buf.WriteString(fmt.Sprintf("%q", message))
			buf.WriteString(`,"module":"`)
			buf.WriteString(context.FileName())
			buf.WriteString(`"}`)
		}
		buf.WriteByte('\n')
		return buf.String()
	}
}

func reloadConfig() {
	logger, err := seelog.LoggerFromConfigAsString(seelogConfig())
	if err != nil {
		seelog.Error(err)
		return
	}
	setGlobalLogger(logger, Config.outputFormat)
}

// seelogConfig writes console output to stderr so that stdout only carries
// command results.
func seelogConfig() string {
	c := `
<seelog type="sync">
	<outputs formatid="` + Config.outputFormat + `">
		<filter levels="` + getLevelList(Config.level) + `">
			<custom name="` + stderrReceiverName + `" />
		</filter>`
	if Config.logfile != "" {
		c += `
		<filter levels="` + getLevelList(Config.level) + `">
			<rollingfile filename="` + Config.logfile + `" type="date"
			 datepattern="2006-01-02-15" archivetype="none" maxrolls="` + strconv.Itoa(Config.MaxRollCount) + `" />
		</filter>`
	}
	c += `
	</outputs>
	<formats>
		<format id="` + logFmt + `" format="%S3ApiLogfmt" />
		<format id="` + jsonFmt + `" format="%S3ApiJson" />
	</formats>
</seelog>`

	return c
}

func getLevelList(level string) string {
	levelLists := map[string]string{
		"debug":    "debug,info,warn,error,critical",
		"info":     "info,warn,error,critical",
		"warn":     "warn,error,critical",
		"error":    "error,critical",
		"critical": "critical",
		"off":      "off",
	}
	return levelLists[level]
}

// SetLevel sets the log level for logging
func SetLevel(logLevel string) {
	levels := map[string]string{
		"debug": "debug",
		"info":  "info",
		"warn":  "warn",
		"error": "error",
		"crit":  "critical",
		"none":  "off",
	}

	parsedLevel, ok := levels[strings.ToLower(logLevel)]
	if !ok {
		return
	}
	Config.lock.Lock()
	defer Config.lock.Unlock()
	Config.level = parsedLevel
	reloadConfig()
}

// GetLevel gets the log level
func GetLevel() string {
	Config.lock.Lock()
	defer Config.lock.Unlock()

	return Config.level
}

// SetTimestampFormat sets the layout used for the time field of every line.
func SetTimestampFormat(format string) {
	Config.timestampLock.Lock()
	defer Config.timestampLock.Unlock()
	Config.timestampFormat = format
}

func timestampFormat() string {
	Config.timestampLock.RLock()
	defer Config.timestampLock.RUnlock()
	if Config.timestampFormat == "" {
		return DEFAULT_TIMESTAMP_FORMAT
	}
	return Config.timestampFormat
}

func init() {
	Config = &logConfig{
		logfile:         os.Getenv(LOGFILE_ENV_VAR),
		level:           DEFAULT_LOGLEVEL,
		outputFormat:    DEFAULT_OUTPUT_FORMAT,
		timestampFormat: DEFAULT_TIMESTAMP_FORMAT,
		MaxRollCount:    DEFAULT_MAX_ROLL_COUNT,
	}
	registerFormatters()
}

func registerFormatters() {
	if err := seelog.RegisterCustomFormatter("S3ApiLogfmt", logfmtFormatter); err != nil {
		seelog.Error(err)
	}
	if err := seelog.RegisterCustomFormatter("S3ApiJson", jsonFormatter); err != nil {
		seelog.Error(err)
	}
	registerStderrReceiver()
}

// InitSeelog reads the logging environment and installs the resulting logger
// globally.
func InitSeelog() {
	if outputFormat := os.Getenv(LOG_OUTPUT_FORMAT_ENV_VAR); outputFormat != "" {
		Config.outputFormat = outputFormat
	}
	if format := os.Getenv(LOG_TIMESTAMP_FORMAT_ENV_VAR); format != "" {
		SetTimestampFormat(format)
	}
	if maxRollCount := os.Getenv(LOG_MAX_ROLL_COUNT_ENV_VAR); maxRollCount != "" {
		i, err := strconv.Atoi(maxRollCount)
		if err == nil {
			Config.MaxRollCount = i
		} else {
			seelog.Error("Invalid value for "+LOG_MAX_ROLL_COUNT_ENV_VAR, err)
		}
	}

	if level := os.Getenv(LOGLEVEL_ENV_VAR); level != "" {
		SetLevel(level)
		return
	}
	reloadConfig()
}
