// Package inventorize builds and verifies inventories: manifests recording the
// size and one or more content hashes of every file under a repository
// directory, used to detect files that were added, removed, resized or
// silently altered.
//
// # Core API
//
// Build an inventory and persist it:
//
//	config := inventorize.NewConfiguration()
//	config.SetHashAlgorithms([]inventorize.HashAlgorithm{inventorize.MD5, inventorize.SHA1})
//	inv := inventorize.NewInventory(config)
//	if err := inv.Build("/srv/archive"); err != nil {
//		return err
//	}
//	err := inventorize.SaveInventory("/var/lib/archive.json", inv, false)
//
// Verify a repository against a stored inventory:
//
//	inv, err := inventorize.LoadInventory("/var/lib/archive.json")
//	report, err := inv.Check("/srv/archive", true)
//	for _, kind := range report.Failures() {
//		fmt.Println(kind, report.ByFailure(kind))
//	}
//
// Record files added since the last run, dropping records of deleted files:
//
//	err := inv.Update("/srv/archive", true)
//
// Update only looks at which paths exist. A tracked file whose content
// changed keeps its old record; only Check with hashes enabled notices.
//
// # Configuration
//
// Enable debug output:
//
//	inventorize.SetDebugFlags("walk,hash")
//	inventorize.SetVerboseLevel(2)
package inventorize
