// Copyright 2024 The SV Elaborator Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command svelab is a small CLI front end that drives the lex/preprocess/
// parse pipeline over real files, printing any diagnostics it collects
// along the way and exiting non-zero iff one of them was Error or Fatal
// severity.
package main

import (
	"os"

	"go.uber.org/zap"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger, _ := zap.NewProduction()
		logger.Sugar().Errorw("svelab failed", "error", err)
		os.Exit(1)
	}
}
