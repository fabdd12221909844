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
	"io"
	"os"

	"github.com/cihub/seelog"
)

const stderrReceiverName = "stderr"

// stderrReceiver is a seelog custom receiver writing formatted messages to
// standard error.
type stderrReceiver struct {
	out io.Writer
}

func registerStderrReceiver() {
	seelog.RegisterReceiver(stderrReceiverName, &stderrReceiver{})
}

func (r *stderrReceiver) ReceiveMessage(message string, level seelog.LogLevel, context seelog.LogContextInterface) error {
	out := r.out
	if out == nil {
		out = os.Stderr
	}
	_, err := io.WriteString(out, message)
	return err
}

func (r *stderrReceiver) AfterParse(initArgs seelog.CustomReceiverInitArgs) error {
	return nil
}

func (r *stderrReceiver) Flush() {}

func (r *stderrReceiver) Close() error {
	return nil
}
