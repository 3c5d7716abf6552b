// Package factory provides a small generic registry used to instantiate modules
// from configuration. Modules are defined by a type string and a map of raw
// settings. Factories decode the settings into typed structs and return the
// concrete implementation.
//
// Example usage:
//
//	reg := factory.NewRegistry[metrics.MetricsSink]()
//	reg.Register("prometheus", func(conf map[string]any) (metrics.MetricsSink, error) {
//	    var c struct{ Namespace string `json:"namespace"` }
//	    if err := factory.Decode(conf, &c); err != nil {
//	        return nil, err
//	    }
//	    return newPromSink(c.Namespace)
//	})
//	s, err := reg.Create(factory.ModuleConfig{Type: "prometheus", Conf: map[string]any{"namespace": "ersim"}})
package factory
