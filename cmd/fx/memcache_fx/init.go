package memcache_fx

import (
	"go.uber.org/fx"

	mem "tripweaver/pkg/memcache"
)

var Module = fx.Provide(provideMemStore)

func provideMemStore() *mem.KVStore {
	return mem.NewKVStore()
}
