package discovery

import (
	"context"
	"fmt"
	"time"

	"github.com/example/craftshop/pkg/config"
	clientv3 "go.etcd.io/etcd/client/v3"
)

const leaseTTLSeconds = 30

// Registry announces the storefront API in etcd so the edge gateway can
// discover live instances.
type Registry struct {
	client *clientv3.Client
	config *config.EtcdConfig
}

type Instance struct {
	Name string
	Host string
	Port int
}

func (i *Instance) addr() string {
	return fmt.Sprintf("%s:%d", i.Host, i.Port)
}

func NewRegistry(cfg *config.EtcdConfig) (*Registry, error) {
	cli, err := clientv3.New(clientv3.Config{
		Endpoints:   cfg.Endpoints,
		DialTimeout: cfg.DialTimeout * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to etcd: %w", err)
	}

	return &Registry{client: cli, config: cfg}, nil
}

// Register puts the instance under a lease and keeps it alive until the
// context ends or the registry closes.
func (r *Registry) Register(ctx context.Context, instance *Instance) error {
	key := fmt.Sprintf("%s%s/%s", r.config.Prefix, instance.Name, instance.addr())

	lease, err := r.client.Grant(ctx, leaseTTLSeconds)
	if err != nil {
		return fmt.Errorf("failed to create lease: %w", err)
	}

	if _, err := r.client.Put(ctx, key, instance.addr(), clientv3.WithLease(lease.ID)); err != nil {
		return fmt.Errorf("failed to register service: %w", err)
	}

	ch, err := r.client.KeepAlive(ctx, lease.ID)
	if err != nil {
		return fmt.Errorf("failed to keep lease alive: %w", err)
	}
	go func() {
		for range ch {
		}
	}()

	return nil
}

func (r *Registry) Deregister(ctx context.Context, instance *Instance) error {
	key := fmt.Sprintf("%s%s/%s", r.config.Prefix, instance.Name, instance.addr())
	if _, err := r.client.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to deregister service: %w", err)
	}
	return nil
}

// Instances lists the registered addresses for a service name.
func (r *Registry) Instances(ctx context.Context, serviceName string) ([]*Instance, error) {
	key := fmt.Sprintf("%s%s/", r.config.Prefix, serviceName)

	resp, err := r.client.Get(ctx, key, clientv3.WithPrefix())
	if err != nil {
		return nil, fmt.Errorf("failed to discover service: %w", err)
	}

	var instances []*Instance
	for _, kv := range resp.Kvs {
		instances = append(instances, &Instance{
			Name: serviceName,
			Host: string(kv.Value),
		})
	}
	return instances, nil
}

func (r *Registry) Close() error {
	return r.client.Close()
}
