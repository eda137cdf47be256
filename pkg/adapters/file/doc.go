// Package file reads gate definitions from YAML or JSON documents.
//
// A document lists gates, each with an ordered config of single-command
// items:
//
//	gates:
//	  - entity: User
//	    attribute: status
//	    config:
//	      - state: pending
//	        human: Pending Activation
//	        transitions_to: active
//	      - state: active
//	        transitions_to: [suspended, archived]
//	      - default: pending
//	      - make_sequential: [one_way]
//
// Validation of the resulting scripts is left to the engine.
package file
