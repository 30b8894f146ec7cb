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

package consts

// StoreBackend identifies an implementation of the key-value store.
type StoreBackend string

const (
	// StoreBackendMemory keeps the keys in the process memory.
	StoreBackendMemory StoreBackend = "memory"
	// StoreBackendSSM keeps the keys in the AWS Systems Manager Parameter Store.
	StoreBackendSSM StoreBackend = "ssm"
	// StoreBackendRedis keeps the keys in a Redis server.
	StoreBackendRedis StoreBackend = "redis"
	// StoreBackendConfigMap keeps the keys in the data of a Kubernetes ConfigMap.
	StoreBackendConfigMap StoreBackend = "configmap"

	// DefaultConfigMapName is the default name of the ConfigMap used by the configmap backend.
	DefaultConfigMapName = "cidrcalc-store"
	// DefaultConfigMapNamespace is the default namespace of the ConfigMap used by the configmap backend.
	DefaultConfigMapNamespace = "default"
	// DefaultRedisAddress is the default address of the Redis server.
	DefaultRedisAddress = "localhost:6379"

	// ManagedByLabelKey is the label key set on the Kubernetes resources created by cidrcalc.
	ManagedByLabelKey = "app.kubernetes.io/managed-by"
	// ManagedByLabelValue is the label value set on the Kubernetes resources created by cidrcalc.
	ManagedByLabelValue = "cidrcalc"
)

// StoreBackends lists the supported backends.
var StoreBackends = []string{
	string(StoreBackendMemory),
	string(StoreBackendSSM),
	string(StoreBackendRedis),
	string(StoreBackendConfigMap),
}
