package main

// Run executes the whatis command.
func (c *WhatisCmd) Run(deps *Dependencies) error {
	return runBatch(deps, c.Files)
}
