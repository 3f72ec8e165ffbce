/*
Copyright 2026 the CDP Integration Test Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package api

import (
	"fmt"
	"strings"

	"github.com/go-logr/logr"
)

// LogrLogger routes client diagnostics to a structured logger, for use
// outside of a Ginkgo suite.
type LogrLogger struct {
	logger logr.Logger
}

func NewLogrLogger(logger logr.Logger) *LogrLogger {
	return &LogrLogger{
		logger: logger,
	}
}

func (l *LogrLogger) Printf(format string, args ...any) {
	l.logger.Info(strings.TrimRight(fmt.Sprintf(format, args...), "\n"))
}
