/*
Package ports defines the driven ports (interfaces) around the organization tree.

These interfaces decouple tree owners from external implementations, allowing the
same code to run against in-process or distributed locking and against any source
of tree definitions.

# Key Interfaces

  - Locker: Provides mutual exclusion per tree root (in memory or Redis).
  - DefinitionLoader: Responsible for loading a schema.Definition (file, memory, DSL).
*/
package ports
