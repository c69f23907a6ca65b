// Package config describes a dispatch tree in YAML.
//
//	level: info
//	format: text
//	levels:
//	  - target: github.com/acme/app/db
//	    level: warn
//	outputs:
//	  - type: stdout
//	  - type: dispatch
//	    level: error
//	    format: none
//	    outputs:
//	      - type: file
//	        path: errors.log
//
// Load layers built-in defaults, the file and the environment
// (LOGTREE_LEVEL, LOGTREE_FORMAT, LOGTREE_CALLER) and validates the
// result. Install does the same and then installs the tree as the global
// logger.
package config
