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

package main

import (
	"os"

	"github.com/sabi/sabi-s3/apierrors"
	"github.com/sabi/sabi-s3/logger"
	"github.com/sabi/sabi-s3/logger/field"
)

func main() {
	// Use a returning main so deferred flushes run before exiting.
	os.Exit(_main())
}

func _main() int {
	defer logger.Flush()
	logger.InitSeelog()

	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		logger.Critical("s3api failed", logger.Fields{
			field.Error:     err,
			field.ErrorName: apierrors.NameOf(err),
		})
		return 1
	}
	return 0
}
