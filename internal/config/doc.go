// Package config provides configuration parsing for statebind.
//
// The configuration is stored in statebind.json. Every field is optional;
// missing values take the defaults below.
//
// # Configuration File Structure
//
//	{
//	  "server": {
//	    "host": "localhost",
//	    "port": 3000,
//	    "path": "/ws",
//	    "metricsPath": "/metrics"
//	  },
//	  "binder": {
//	    "tokenLength": 100,
//	    "tokenSource": "random"
//	  },
//	  "log": {
//	    "level": "info"
//	  }
//	}
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Listening on", cfg.Address())
package config
