// Package share builds the public artifacts for sharing a gift collection.
// Actually putting them on a clipboard or share sheet is the platform's job.
package share

import "fmt"

const publicBase = "https://giftwiz.ai/share"

// CollectionURL returns the public link for a profile's gift collection.
func CollectionURL(profileID string) string {
	return fmt.Sprintf("%s/%s", publicBase, profileID)
}

// Message returns the share-sheet text accompanying the link.
func Message(relation string) string {
	return fmt.Sprintf("Check out these gifts for my %s!", relation)
}
