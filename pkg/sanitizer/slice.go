package sanitizer

// NormalizeStringSlice applies normalizer to every item, dropping empties
// and duplicates while preserving first-seen order.
func NormalizeStringSlice(items []string, normalizer func(string) string) []string {
	if len(items) == 0 {
		return []string{}
	}

	seen := make(map[string]bool)
	result := make([]string, 0, len(items))

	for _, item := range items {
		normalized := normalizer(item)

		if normalized == "" {
			continue
		}

		if seen[normalized] {
			continue
		}

		seen[normalized] = true
		result = append(result, normalized)
	}

	return result
}

// TrimStringSlice applies normalizer to every item and drops empties, but
// keeps duplicates and order. Agenda entries are an ordered sequence, so
// unlike tags they must not be deduplicated.
func TrimStringSlice(items []string, normalizer func(string) string) []string {
	if len(items) == 0 {
		return []string{}
	}

	result := make([]string, 0, len(items))
	for _, item := range items {
		normalized := normalizer(item)
		if normalized == "" {
			continue
		}
		result = append(result, normalized)
	}

	return result
}

func NormalizeTags(tags []string) []string {
	return NormalizeStringSlice(tags, NormalizeTag)
}

func NormalizeAgenda(agenda []string) []string {
	return TrimStringSlice(agenda, TrimAndNormalize)
}
