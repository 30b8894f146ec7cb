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
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/ssm"
	"github.com/aws/aws-sdk-go/service/ssm/ssmiface"
	"k8s.io/klog/v2"

	"github.com/liqotech/cidrcalc/pkg/consts"
	"github.com/liqotech/cidrcalc/pkg/utils/errdefs"
)

// SSM is a Store keeping the keys as parameters of the AWS Systems Manager Parameter Store.
type SSM struct {
	client ssmiface.SSMAPI
	prefix string
}

var _ Store = &SSM{}

// NewSSM returns a new SSM store. Parameter names are built concatenating prefix and key.
func NewSSM(client ssmiface.SSMAPI, prefix string) *SSM {
	return &SSM{client: client, prefix: prefix}
}

func (s *SSM) name(key string) string {
	return s.prefix + key
}

// parameterType returns the type the parameter is stored with: CIDR lists are stored as StringList.
func parameterType(key string) string {
	if strings.HasSuffix(key, consts.CidrListKeySuffix) {
		return ssm.ParameterTypeStringList
	}
	return ssm.ParameterTypeString
}

// Get implements Store.
func (s *SSM) Get(ctx context.Context, key string) (string, error) {
	out, err := s.client.GetParameterWithContext(ctx, &ssm.GetParameterInput{
		Name: aws.String(s.name(key)),
	})
	if err != nil {
		return "", s.translate(err, "get", key)
	}
	if out.Parameter == nil || out.Parameter.Value == nil {
		return "", errdefs.NotFoundf("parameter %q has no value", s.name(key))
	}
	return *out.Parameter.Value, nil
}

// Put implements Store.
func (s *SSM) Put(ctx context.Context, key, value string) error {
	out, err := s.client.PutParameterWithContext(ctx, &ssm.PutParameterInput{
		Name:      aws.String(s.name(key)),
		Value:     aws.String(value),
		Type:      aws.String(parameterType(key)),
		Overwrite: aws.Bool(true),
	})
	if err != nil {
		return s.translate(err, "put", key)
	}
	klog.V(4).Infof("Parameter %q written (version %d)", s.name(key), aws.Int64Value(out.Version))
	return nil
}

// Delete implements Store.
func (s *SSM) Delete(ctx context.Context, key string) error {
	if _, err := s.client.DeleteParameterWithContext(ctx, &ssm.DeleteParameterInput{
		Name: aws.String(s.name(key)),
	}); err != nil {
		return s.translate(err, "delete", key)
	}
	return nil
}

func (s *SSM) translate(err error, verb, key string) error {
	var aerr awserr.Error
	if errors.As(err, &aerr) && aerr.Code() == ssm.ErrCodeParameterNotFound {
		return errdefs.NotFoundf("parameter %q not found", s.name(key))
	}
	return errdefs.AsUnavailable(fmt.Errorf("failed to %s parameter %q: %w", verb, s.name(key), err))
}
