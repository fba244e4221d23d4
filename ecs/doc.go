// Package ecs provides ECS adapters for aspen.
package ecs
