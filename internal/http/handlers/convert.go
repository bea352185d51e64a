package handlers

import "service-assistance/internal/domain"

func (r createProviderRequest) toModel() *domain.Provider {
	return &domain.Provider{
		Name:  r.Name,
		Phone: r.Phone,
		Lat:   r.Lat,
		Lon:   r.Lon,
	}
}

func (r updateProviderRequest) toModel() domain.PartialProviderUpdate {
	return domain.PartialProviderUpdate{
		ID:          r.ID,
		Name:        r.Name,
		Phone:       r.Phone,
		Lat:         r.Lat,
		Lon:         r.Lon,
		IsAvailable: r.IsAvailable,
	}
}

func providerToResponse(p domain.Provider) providerDTO {
	return providerDTO{
		ID:          p.ID,
		Name:        p.Name,
		Phone:       p.Phone,
		Lat:         p.Lat,
		Lon:         p.Lon,
		IsAvailable: p.IsAvailable,
		CreatedAt:   p.CreatedAt,
	}
}

func providersToResponse(list []domain.Provider) []providerDTO {
	out := make([]providerDTO, 0, len(list))
	for _, p := range list {
		out = append(out, providerToResponse(p))
	}
	return out
}

func (r createRequestRequest) toModel() *domain.AssistanceRequest {
	return &domain.AssistanceRequest{
		CustomerName: r.CustomerName,
		PolicyNumber: r.PolicyNumber,
		Lat:          r.Lat,
		Lon:          r.Lon,
		IssueDesc:    r.IssueDesc,
	}
}

func requestToResponse(req domain.AssistanceRequest) requestDTO {
	return requestDTO{
		ID:           req.ID,
		CustomerName: req.CustomerName,
		PolicyNumber: req.PolicyNumber,
		Lat:          req.Lat,
		Lon:          req.Lon,
		IssueDesc:    req.IssueDesc,
		Status:       req.Status,
		CreatedAt:    req.CreatedAt,
	}
}

func dispatchResultToResponse(res domain.DispatchResult) dispatchResponse {
	return dispatchResponse{
		AssignmentID: res.AssignmentID,
		RequestID:    res.RequestID,
		ProviderID:   res.ProviderID,
		DistanceKm:   res.DistanceKm,
		DispatchedAt: res.DispatchedAt,
	}
}

func releaseResultToResponse(res domain.ReleaseResult) releaseResponse {
	return releaseResponse{
		RequestID:  res.RequestID,
		ProviderID: res.ProviderID,
		Status:     res.Status,
	}
}
