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
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/cihub/seelog"
)

const (
	structuredTxtFormatPrefix  = "logger=structured "
	structuredJsonFormatPrefix = `"logger":"structured",`
)

// Fields is a set of key/value pairs attached to a structured log line.
type Fields map[string]interface{}

type messageFormatter interface {
	Format(msg string, fields ...Fields) string
}

type messageTextFormatter struct{}
type messageJsonFormatter struct{}

var (
	defaultStructuredTextFormatter = &messageTextFormatter{}
	defaultStructuredJsonFormatter = &messageJsonFormatter{}

	loggerMux              sync.RWMutex
	globalStructuredLogger *structuredLogger
)

type structuredLogger struct {
	formatter messageFormatter
}

func newStructuredLogger(outputFormat string) *structuredLogger {
	if outputFormat == jsonFmt {
		return &structuredLogger{formatter: defaultStructuredJsonFormatter}
	}
	return &structuredLogger{formatter: defaultStructuredTextFormatter}
}

func setGlobalLogger(logger seelog.LoggerInterface, outputFormat string) {
	loggerMux.Lock()
	defer loggerMux.Unlock()
	seelog.ReplaceLogger(logger)
	globalStructuredLogger = newStructuredLogger(outputFormat)
}

func getGlobalStructuredLogger() *structuredLogger {
	loggerMux.RLock()
	defer loggerMux.RUnlock()
	if globalStructuredLogger == nil {
		return newStructuredLogger(Config.outputFormat)
	}
	return globalStructuredLogger
}

func mergeFields(fields []Fields) Fields {
	merged := Fields{}
	for _, f := range fields {
		for k, v := range f {
			merged[k] = v
		}
	}
	return merged
}

func sortedKeys(fields Fields) []string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (f *messageTextFormatter) Format(msg string, fields ...Fields) string {
	buf := bufferPool.Get()
	defer bufferPool.Put(buf)
	buf.WriteString(structuredTxtFormatPrefix)
	buf.WriteString("msg=")
	buf.WriteString(fmt.Sprintf("%q", msg))
	merged := mergeFields(fields)
	for _, k := range sortedKeys(merged) {
		buf.WriteByte(' ')
		buf.WriteString(k)
		buf.WriteByte('=')
		switch v := merged[k].(type) {
		case string:
			buf.WriteString(fmt.Sprintf("%q", v))
		case error:
			buf.WriteString(fmt.Sprintf("%q", v.Error()))
		case fmt.Stringer:
			buf.WriteString(fmt.Sprintf("%q", v.String()))
		default:
			buf.WriteString(fmt.Sprintf("%+v", v))
		}
	}
	return buf.String()
}

func (f *messageJsonFormatter) Format(msg string, fields ...Fields) string {
	buf := bufferPool.Get()
	defer bufferPool.Put(buf)
	buf.WriteString(structuredJsonFormatPrefix)
	merged := mergeFields(fields)
	for _, k := range sortedKeys(merged) {
		key, _ := json.Marshal(k)
		var value []byte
		var err error
		switch v := merged[k].(type) {
		case error:
			value, err = json.Marshal(v.Error())
		case fmt.Stringer:
			value, err = json.Marshal(v.String())
		default:
			value, err = json.Marshal(v)
		}
		if err != nil {
			value, _ = json.Marshal(fmt.Sprintf("%+v", merged[k]))
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
		buf.WriteByte(',')
	}
	m, _ := json.Marshal(msg)
	buf.WriteString(`"msg":`)
	buf.Write(m)
	return buf.String()
}

func (sl *structuredLogger) Trace(msg string, fields ...Fields) {
	seelog.Trace(sl.formatter.Format(msg, fields...))
}

func (sl *structuredLogger) Debug(msg string, fields ...Fields) {
	seelog.Debug(sl.formatter.Format(msg, fields...))
}

func (sl *structuredLogger) Info(msg string, fields ...Fields) {
	seelog.Info(sl.formatter.Format(msg, fields...))
}

func (sl *structuredLogger) Warn(msg string, fields ...Fields) {
	seelog.Warn(sl.formatter.Format(msg, fields...))
}

func (sl *structuredLogger) Error(msg string, fields ...Fields) {
	seelog.Error(sl.formatter.Format(msg, fields...))
}

func (sl *structuredLogger) Critical(msg string, fields ...Fields) {
	seelog.Critical(sl.formatter.Format(msg, fields...))
}

// Trace logs a message at trace level with optional structured fields.
func Trace(msg string, fields ...Fields) {
	getGlobalStructuredLogger().Trace(msg, fields...)
}

// Debug logs a message at debug level with optional structured fields.
func Debug(msg string, fields ...Fields) {
	getGlobalStructuredLogger().Debug(msg, fields...)
}

// Info logs a message at info level with optional structured fields.
func Info(msg string, fields ...Fields) {
	getGlobalStructuredLogger().Info(msg, fields...)
}

// Warn logs a message at warn level with optional structured fields.
func Warn(msg string, fields ...Fields) {
	getGlobalStructuredLogger().Warn(msg, fields...)
}

// Error logs a message at error level with optional structured fields.
func Error(msg string, fields ...Fields) {
	getGlobalStructuredLogger().Error(msg, fields...)
}

// Critical logs a message at critical level with optional structured fields.
func Critical(msg string, fields ...Fields) {
	getGlobalStructuredLogger().Critical(msg, fields...)
}

// Flush flushes the underlying seelog logger.
func Flush() {
	seelog.Flush()
}
