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

package store

import (
	"context"
	"fmt"

	corev1 "k8s.io/api/core/v1"
	kerrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"
	"k8s.io/client-go/util/retry"
	"k8s.io/klog/v2"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/controller/controllerutil"

	"github.com/liqotech/cidrcalc/pkg/consts"
	"github.com/liqotech/cidrcalc/pkg/utils/errdefs"
)

// ConfigMap is a Store keeping all the keys in the data of a single Kubernetes ConfigMap.
type ConfigMap struct {
	client client.Client
	ref    types.NamespacedName
}

var _ Store = &ConfigMap{}

// NewConfigMap returns a new ConfigMap store backed by the ConfigMap identified by ref.
// The ConfigMap is created at the first write.
func NewConfigMap(cl client.Client, ref types.NamespacedName) *ConfigMap {
	return &ConfigMap{client: cl, ref: ref}
}

func (c *ConfigMap) get(ctx context.Context) (*corev1.ConfigMap, error) {
	var cm corev1.ConfigMap
	if err := c.client.Get(ctx, c.ref, &cm); err != nil {
		if kerrors.IsNotFound(err) {
			return nil, errdefs.NotFoundf("configmap %q not found", c.ref)
		}
		return nil, errdefs.AsUnavailable(fmt.Errorf("failed to retrieve configmap %q: %w", c.ref, err))
	}
	return &cm, nil
}

// Get implements Store.
func (c *ConfigMap) Get(ctx context.Context, key string) (string, error) {
	cm, err := c.get(ctx)
	if err != nil {
		return "", err
	}

	value, ok := cm.Data[key]
	if !ok {
		return "", errdefs.NotFoundf("key %q not found in configmap %q", key, c.ref)
	}
	return value, nil
}

// Put implements Store.
func (c *ConfigMap) Put(ctx context.Context, key, value string) error {
	cm := &corev1.ConfigMap{ObjectMeta: metav1.ObjectMeta{Name: c.ref.Name, Namespace: c.ref.Namespace}}
	op, err := controllerutil.CreateOrUpdate(ctx, c.client, cm, func() error {
		if cm.Labels == nil {
			cm.Labels = map[string]string{}
		}
		cm.Labels[consts.ManagedByLabelKey] = consts.ManagedByLabelValue

		if cm.Data == nil {
			cm.Data = map[string]string{}
		}
		cm.Data[key] = value
		return nil
	})
	if err != nil {
		return errdefs.AsUnavailable(fmt.Errorf("failed to write key %q in configmap %q: %w", key, c.ref, err))
	}

	klog.V(logLevel(op)).Infof("Key %q written in configmap %q (%s)", key, c.ref, op)
	return nil
}

// Delete implements Store.
func (c *ConfigMap) Delete(ctx context.Context, key string) error {
	return retry.RetryOnConflict(retry.DefaultRetry, func() error {
		cm, err := c.get(ctx)
		if err != nil {
			return err
		}

		if _, ok := cm.Data[key]; !ok {
			return errdefs.NotFoundf("key %q not found in configmap %q", key, c.ref)
		}
		delete(cm.Data, key)

		if err := c.client.Update(ctx, cm); err != nil {
			if kerrors.IsConflict(err) {
				return err
			}
			return errdefs.AsUnavailable(fmt.Errorf("failed to delete key %q from configmap %q: %w", key, c.ref, err))
		}
		return nil
	})
}

// logLevel returns the verbosity to log a write with, depending on whether the configmap has been modified.
func logLevel(op controllerutil.OperationResult) klog.Level {
	if op == controllerutil.OperationResultNone {
		return 4
	}
	return 2
}
