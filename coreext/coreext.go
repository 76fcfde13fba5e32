// Package coreext imports all core extensions shipped with the interpreter.
package coreext

import (
	// importing for side effects
	_ "github.com/zephyrtronium/efecta/coreext/accept"
	_ "github.com/zephyrtronium/efecta/coreext/date"
)
