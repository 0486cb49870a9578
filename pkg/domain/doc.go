/*
Package domain contains the organization tree: a hierarchy of leaves and composites
manipulated through the single Node interface.

It is kept pure and free of external dependencies like I/O, locking or persistence.
Nothing in this package blocks, and nothing in it is safe for concurrent mutation;
owners that share a tree across goroutines serialize mutations per tree root
(see package guard).

# Key Entities

  - Node: The capability every element implements (aggregate value, display name,
    child management).
  - Leaf: A fixed value that can never own children. AddChild and RemoveChild fail
    with ErrUnsupportedOperation.
  - Composite: An ordered list of exclusively owned children. Its aggregate value is
    its own value plus its children's, and its display name is
    "Composite(child+child+...)".

# Ownership

Every node has at most one owner. Composite.AddChild rejects shared ownership and
cycles with ErrInvalidOperation; Composite.RemoveChild releases ownership so the node
can be attached elsewhere.
*/
package domain
