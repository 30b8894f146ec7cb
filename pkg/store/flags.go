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
	"os"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/ssm"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/pflag"
	"k8s.io/apimachinery/pkg/types"
	"k8s.io/klog/v2"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/client/config"

	"github.com/liqotech/cidrcalc/pkg/consts"
	"github.com/liqotech/cidrcalc/pkg/utils/args"
)

// FlagName is the type for the name of the flags.
type FlagName string

func (fn FlagName) String() string {
	return string(fn)
}

const (
	// FlagNameBackend selects the store implementation.
	FlagNameBackend FlagName = "store"

	// FlagNameAWSRegion is the AWS region of the Parameter Store.
	FlagNameAWSRegion FlagName = "aws-region"
	// FlagNameSSMPrefix is the prefix prepended to the parameter names.
	FlagNameSSMPrefix FlagName = "ssm-prefix"

	// FlagNameRedisAddress is the address of the Redis server.
	FlagNameRedisAddress FlagName = "redis-address"
	// FlagNameRedisDB is the Redis logical database.
	FlagNameRedisDB FlagName = "redis-db"
	// FlagNameRedisPrefix is the prefix prepended to the Redis keys.
	FlagNameRedisPrefix FlagName = "redis-prefix"

	// FlagNameConfigMapName is the name of the ConfigMap holding the keys.
	FlagNameConfigMapName FlagName = "configmap-name"
	// FlagNameConfigMapNamespace is the namespace of the ConfigMap holding the keys.
	FlagNameConfigMapNamespace FlagName = "configmap-namespace"

	// EnvRedisPassword is the environment variable holding the Redis password.
	EnvRedisPassword = "REDIS_PASSWORD"
)

// Options contains the options to configure the store.
type Options struct {
	Backend *args.Enum

	AWSRegion string
	SSMPrefix string

	RedisAddress string
	RedisDB      int
	RedisPrefix  string

	ConfigMapName      string
	ConfigMapNamespace string
}

// NewOptions returns the default store options.
func NewOptions() *Options {
	return &Options{
		Backend: args.NewEnum(consts.StoreBackends, string(consts.StoreBackendMemory)),
	}
}

// InitFlags initializes the flags for the Options struct.
func InitFlags(flagset *pflag.FlagSet, o *Options) {
	flagset.Var(o.Backend, FlagNameBackend.String(), fmt.Sprintf("The key-value store keeping the partitions (one of %v)", o.Backend.Allowed))

	flagset.StringVar(&o.AWSRegion, FlagNameAWSRegion.String(), "",
		"The AWS region of the Parameter Store (defaults to the region of the shared configuration)")
	flagset.StringVar(&o.SSMPrefix, FlagNameSSMPrefix.String(), "", "The prefix prepended to the name of the parameters")

	flagset.StringVar(&o.RedisAddress, FlagNameRedisAddress.String(), consts.DefaultRedisAddress, "The address of the Redis server")
	flagset.IntVar(&o.RedisDB, FlagNameRedisDB.String(), 0, "The Redis logical database")
	flagset.StringVar(&o.RedisPrefix, FlagNameRedisPrefix.String(), "cidrcalc:", "The prefix prepended to the Redis keys")

	flagset.StringVar(&o.ConfigMapName, FlagNameConfigMapName.String(), consts.DefaultConfigMapName,
		"The name of the ConfigMap holding the keys")
	flagset.StringVar(&o.ConfigMapNamespace, FlagNameConfigMapNamespace.String(), consts.DefaultConfigMapNamespace,
		"The namespace of the ConfigMap holding the keys")
}

// New returns the store selected by the options.
func New(ctx context.Context, o *Options) (Store, error) {
	backend := consts.StoreBackend(o.Backend.Value)
	klog.V(2).Infof("Initializing the %q store", backend)

	switch backend {
	case consts.StoreBackendMemory:
		return NewMemory(), nil

	case consts.StoreBackendSSM:
		cfg := aws.NewConfig()
		if o.AWSRegion != "" {
			cfg = cfg.WithRegion(o.AWSRegion)
		}
		sess, err := session.NewSessionWithOptions(session.Options{
			Config:            *cfg,
			SharedConfigState: session.SharedConfigEnable,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize the AWS session: %w", err)
		}
		return NewSSM(ssm.New(sess), o.SSMPrefix), nil

	case consts.StoreBackendRedis:
		rs := NewRedis(redis.NewClient(&redis.Options{
			Addr:     o.RedisAddress,
			Password: os.Getenv(EnvRedisPassword),
			DB:       o.RedisDB,
		}), o.RedisPrefix)
		if err := rs.Ping(ctx); err != nil {
			return nil, err
		}
		return rs, nil

	case consts.StoreBackendConfigMap:
		restcfg, err := config.GetConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to retrieve the kubernetes configuration: %w", err)
		}
		cl, err := client.New(restcfg, client.Options{})
		if err != nil {
			return nil, fmt.Errorf("failed to create the kubernetes client: %w", err)
		}
		return NewConfigMap(cl, types.NamespacedName{Name: o.ConfigMapName, Namespace: o.ConfigMapNamespace}), nil

	default:
		return nil, fmt.Errorf("unknown store backend %q", backend)
	}
}
