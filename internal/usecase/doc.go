// Package usecase содержит сценарии бронирования, каждый в своём подпакете
package usecase
