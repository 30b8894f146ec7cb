// Copyright 2019-2025 The Liqo Authors
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

package testutil

import (
	"fmt"

	"github.com/onsi/gomega/format"
	"github.com/onsi/gomega/types"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// MatchObject is a matcher succeeding on objects with the given name and namespace, carrying all the given labels.
type MatchObject struct {
	Name      string
	Namespace string
	Labels    map[string]string
}

var _ types.GomegaMatcher = &MatchObject{}

// Match implements types.GomegaMatcher.
func (m *MatchObject) Match(actual interface{}) (success bool, err error) {
	obj, ok := actual.(metav1.Object)
	if !ok {
		return false, fmt.Errorf("MatchObject expects a metav1.Object, got %T", actual)
	}

	if obj.GetName() != m.Name || obj.GetNamespace() != m.Namespace {
		return false, nil
	}
	for key, value := range m.Labels {
		if obj.GetLabels()[key] != value {
			return false, nil
		}
	}
	return true, nil
}

// FailureMessage implements types.GomegaMatcher.
func (m *MatchObject) FailureMessage(actual interface{}) (message string) {
	return fmt.Sprintf("Expected\n%s\nto be an object named %s/%s with labels %v",
		format.Object(actual, 1), m.Namespace, m.Name, m.Labels)
}

// NegatedFailureMessage implements types.GomegaMatcher.
func (m *MatchObject) NegatedFailureMessage(actual interface{}) (message string) {
	return fmt.Sprintf("Expected\n%s\nnot to be an object named %s/%s with labels %v",
		format.Object(actual, 1), m.Namespace, m.Name, m.Labels)
}
