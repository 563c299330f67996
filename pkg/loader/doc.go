// Package loader provides a typed registry of on-demand resource loaders:
// a lookup table from key to loader function, replacing the switch
// statement that usually grows around "load the thing named X". New
// resources are added by registering them, not by editing a dispatcher.
//
// The registry composes the sibling utilities the way an application
// would: loads for one key are coalesced (one burst, one execution), and
// an optional ttlcache memoizes successful results.
//
// # Usage
//
//	cache, _ := ttlcache.New[string, []byte](ttlcache.Config{
//	    Capacity:   32,
//	    DefaultTTL: 10 * time.Minute,
//	})
//
//	reg := loader.NewRegistry[string, []byte](
//	    loader.WithCache(cache),
//	    loader.WithLogger[string, []byte](log),
//	)
//
//	_ = reg.Register("user-settings", loadUserSettings)
//	_ = reg.Register("billing-panel", loadBillingPanel)
//
//	data, err := reg.Load(ctx, "billing-panel")
//
// # Error Handling
//
// Load returns ErrNotRegistered for unknown keys. Loader errors propagate
// to every caller that joined the load; they are never cached, so the next
// Load retries. Register rejects duplicate keys (ErrAlreadyRegistered) and
// nil functions (ErrNilLoader) so wiring mistakes surface at startup.
package loader
