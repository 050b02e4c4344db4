// Command katctl exercises the KAT byte-chain core: building query
// strings, decoding them back to a map, and dumping a chain's internal
// diagnostics.
package main

func main() {
	execute()
}
